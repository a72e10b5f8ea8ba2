package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"palette/internal/adapters/tui"
	"palette/internal/bootstrap"
	"palette/internal/config"
	"palette/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	// The terminal belongs to the TUI; logs go to the file only
	logging.SetupLogger(cfg.Verbosity, nil)

	env, err := bootstrap.Open(cfg, "tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer env.Close()

	app := tui.NewApp(env.Store, env.Host, env.Editor, env.Clipboard)
	env.Log.Notify(app.Notify)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
