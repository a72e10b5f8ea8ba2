package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"palette/internal/adapters/render"
	"palette/internal/application/commands"
)

var scanPruneOnly bool

var sortCmd = &cobra.Command{
	Use:   "sort [unsorted|alphabetical|reverse]",
	Short: "Set the sort mode, or cycle to the next one",
	Long: `Set how entries are ordered inside each folder. Without an argument the
mode cycles: unsorted, alphabetical, reverse.

In both sorted modes invalid entries stay at the end.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"unsorted", "alphabetical", "reverse"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := ""
		if len(args) == 1 {
			mode = args[0]
		}
		result, err := commands.NewSortCommand(GetStore(), GetHost(), mode).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove every entry that no longer resolves",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewPurgeCommand(GetStore(), GetHost()).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Rescan the project and update the resource index",
	Long: `Walk the project root and record every file in the resource index.
Files that were moved keep their identifier when their content is unchanged,
so entries pointing at them keep resolving.

--prune-only skips the walk and only forgets files that no longer exist.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		scan := commands.NewScanCommand(env.Index)
		scan.PruneOnly = scanPruneOnly
		stats, err := scan.Execute(context.Background())
		if err != nil {
			return err
		}
		out, err := render.RenderScanStats(stats)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var relocateCmd = &cobra.Command{
	Use:   "relocate <old-path> <new-path>",
	Short: "Record that a project file was moved or renamed",
	Long: `Record a move made outside the palette so the file keeps its identifier
and every entry pointing at it keeps working. Paths are relative to the
project root.

Example:
  palette-cli relocate Assets/Hero.prefab Assets/Characters/Hero.prefab`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRelocateCommand(env.Index, args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "List registered macro classes and their runnable methods",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, class := range env.Macros.Classes() {
			fmt.Println(render.LightBlue(class))
			for _, method := range env.Macros.Methods(class) {
				fmt.Println("  " + method)
			}
		}
		return nil
	},
}

var selectCmd = &cobra.Command{
	Use:   "select <folder-id> <index>",
	Short: "Select the files an entry refers to",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		result, err := commands.NewSelectEntryCommand(GetStore(), GetHost(), args[0], index).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(relocateCmd)
	rootCmd.AddCommand(macrosCmd)
	rootCmd.AddCommand(selectCmd)

	scanCmd.Flags().BoolVar(&scanPruneOnly, "prune-only", false, "only drop identifiers of vanished files")
}
