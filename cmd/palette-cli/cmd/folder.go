package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"palette/internal/application/commands"
)

var folderCmd = &cobra.Command{
	Use:   "folder",
	Short: "Create, rename, move and delete folders",
}

var (
	folderParent string
	folderIndex  int
	folderRoot   bool
)

var folderNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a folder",
	Long: `Create a folder under --parent, or a root folder when --parent is omitted.
A name that clashes with a sibling gets a numeric suffix, and an omitted name
means "New Folder".

Examples:
  palette-cli folder new Characters
  palette-cli folder new --parent 3f2c... Enemies`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		result, err := commands.NewCreateFolderCommand(GetStore(), folderParent, name).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var folderRenameCmd = &cobra.Command{
	Use:   "rename <folder-id> <name>",
	Short: "Rename a folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRenameFolderCommand(GetStore(), args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var folderMoveCmd = &cobra.Command{
	Use:   "move <folder-id> [target-parent-id]",
	Short: "Move a folder under another folder, or to the root",
	Long: `Move a folder, with its subfolders and entries, under a target folder.
Without a target (or with --root) the folder becomes a root folder.
--index positions it among its new siblings; by default it is appended.

A folder cannot be moved into itself or one of its descendants.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := ""
		if len(args) == 2 && !folderRoot {
			target = args[1]
		}
		result, err := commands.NewMoveFolderCommand(GetStore(), args[0], target, folderIndex).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete <folder-id>",
	Short: "Delete a folder with everything in it",
	Long: `Delete a folder together with its subfolders and entries.
The last remaining root folder is never deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewDeleteFolderCommand(GetStore(), args[0], "").Execute(context.Background())
		if err != nil {
			return err
		}
		if !result.Deleted {
			return fmt.Errorf("%s", result.Message)
		}
		printMessage(result.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(folderCmd)
	folderCmd.AddCommand(folderNewCmd)
	folderCmd.AddCommand(folderRenameCmd)
	folderCmd.AddCommand(folderMoveCmd)
	folderCmd.AddCommand(folderDeleteCmd)

	folderNewCmd.Flags().StringVarP(&folderParent, "parent", "p", "", "parent folder ID")
	folderMoveCmd.Flags().IntVarP(&folderIndex, "index", "i", -1, "position among the new siblings (-1 appends)")
	folderMoveCmd.Flags().BoolVar(&folderRoot, "root", false, "move to the root")
}
