package macro

import (
	"context"

	"github.com/atotto/clipboard"

	"palette/internal/logging"
	"palette/internal/ports"
)

// ToolsClassName is the class of the built-in maintenance macros
const ToolsClassName = "PaletteTools"

// Tools returns the built-in class. Point a macro at any project script named
// PaletteTools (e.g. tools/PaletteTools.go) to reach these methods.
func Tools(index ports.ResourceIndex) Class {
	logger := logging.GetLogger("macro")
	return Class{
		Name: ToolsClassName,
		Static: map[string]any{
			"RebuildIndex": func() {
				stats, err := index.Scan(context.Background())
				if err != nil {
					panic(err)
				}
				logger.Info().
					Int("registered", stats.Registered).
					Int("pruned", stats.Pruned).
					Msg("Index rebuilt")
			},
			"PruneIndex": func() {
				pruned, err := index.Prune(context.Background())
				if err != nil {
					panic(err)
				}
				logger.Info().Int("pruned", pruned).Msg("Index pruned")
			},
			"ClearClipboard": func() {
				if err := clipboard.WriteAll(""); err != nil {
					panic(err)
				}
			},
		},
	}
}
