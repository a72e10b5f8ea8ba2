package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"palette/internal/adapters/render"
	"palette/internal/bootstrap"
	"palette/internal/config"
	"palette/internal/domain"
	"palette/internal/logging"
	"palette/internal/ports"
)

var (
	projectRoot    string
	collectionPath string
	verbosity      int
	noColor        bool

	env *bootstrap.Env
)

var rootCmd = &cobra.Command{
	Use:   "palette-cli",
	Short: "Manage a palette of project shortcuts",
	Long: `palette-cli manages a palette: a tree of named folders holding shortcuts
to project files (assets), to static methods of registered tool classes
(macros), and to saved multi-file selections (shortcuts).

Entries keep working when files move because they refer to files through
stable identifiers kept in a per-project resource index.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Parent() == configCmd {
			return nil
		}
		render.SetColor(!noColor)

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if projectRoot != "" {
			cfg.ProjectRoot = projectRoot
		}
		if collectionPath != "" {
			cfg.Collection = collectionPath
		}
		if verbosity > cfg.Verbosity {
			cfg.Verbosity = verbosity
		}
		logging.SetupLogger(cfg.Verbosity, os.Stderr)
		log.Debug().Str("command", cmd.CommandPath()).Msg("Command started")

		env, err = bootstrap.Open(cfg, "cli")
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if env == nil {
			return nil
		}
		return env.Close()
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.Red("Error: ")+err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectRoot, "project", "", "project root (default from config or $"+config.EnvProject+")")
	rootCmd.PersistentFlags().StringVar(&collectionPath, "collection", "", "collection file, .json or .yaml (default from config or $"+config.EnvCollection+")")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// GetStore returns the collection store
func GetStore() ports.CollectionStore {
	return env.Store
}

// GetHost returns the host collaborators
func GetHost() *domain.Host {
	return env.Host
}

func printMessage(msg string) {
	fmt.Println(render.Green(msg))
}
