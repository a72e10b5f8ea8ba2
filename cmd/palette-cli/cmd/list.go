package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"palette/internal/adapters/render"
	"palette/internal/application/commands"
)

var treeEntries bool

var listCmd = &cobra.Command{
	Use:   "list [folder-id]",
	Short: "List entries of one folder, or of the whole palette",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID := ""
		if len(args) == 1 {
			folderID = args[0]
		}
		result, err := commands.NewListCommand(GetStore(), GetHost(), folderID).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(result.Entries) == 0 {
			fmt.Println(render.Grey("No entries"))
			return nil
		}
		out, err := render.RenderEntries(result.Entries)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the folder hierarchy",
	Long: `Display the folders as a tree with their IDs.
Use --entries to list each folder's entries under it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		col, err := GetStore().Load()
		if err != nil {
			return err
		}
		out, err := render.RenderTree(col, GetHost(), render.TreeOptions{
			Entries: treeEntries,
			IDs:     true,
		})
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Fuzzy-search entry names",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := commands.NewSearchCommand(GetStore(), GetHost(), strings.Join(args, " ")).Execute(context.Background())
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println(render.Grey("No matches"))
			return nil
		}
		out, err := render.RenderSearch(results)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(searchCmd)

	treeCmd.Flags().BoolVarP(&treeEntries, "entries", "e", false, "show entries under each folder")
}
