package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"palette/internal/adapters/render"
	"palette/internal/application/commands"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Add, rename, remove, move and open entries",
	Long: `Entries are the shortcuts inside a folder. They are addressed by the folder
ID and the entry's index within the folder, as shown by "palette-cli list".`,
}

var (
	entryFolder      string
	entryTargetIndex int
)

var entryAddAssetCmd = &cobra.Command{
	Use:   "add-asset <path>",
	Short: "Add a shortcut to one project file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddAssetCommand(GetStore(), GetHost(), entryFolder, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var entryAddMacroCmd = &cobra.Command{
	Use:   "add-macro <script-path> <method>",
	Short: "Add a shortcut to a static method of a registered class",
	Long: `Add a macro entry. The script's file name (without extension) names the
class; the method must be a static, parameterless method of that class.

Example:
  palette-cli entry add-macro tools/PaletteTools.go RebuildIndex`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddMacroCommand(GetStore(), GetHost(), entryFolder, args[0], args[1]).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var entryAddShortcutCmd = &cobra.Command{
	Use:   "add-shortcut <path>...",
	Short: "Add a shortcut that re-selects several files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddShortcutCommand(GetStore(), GetHost(), entryFolder, args).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var entryRenameCmd = &cobra.Command{
	Use:   "rename <folder-id> <index> [name]",
	Short: "Set an entry's name; omit the name to restore the default",
	Args:  cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 3 {
			name = args[2]
		}
		result, err := commands.NewRenameEntryCommand(GetStore(), GetHost(), args[0], index, name).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var entryRemoveCmd = &cobra.Command{
	Use:   "remove <folder-id> <index>",
	Short: "Remove an entry",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		result, err := commands.NewRemoveEntryCommand(GetStore(), GetHost(), args[0], index).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var entryMoveCmd = &cobra.Command{
	Use:   "move <folder-id> <index> <target-folder-id>",
	Short: "Move an entry to another folder",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		result, err := commands.NewMoveEntryCommand(GetStore(), GetHost(), args[0], index, args[2], entryTargetIndex).Execute(context.Background())
		if err != nil {
			return err
		}
		printMessage(result.Message)
		return nil
	},
}

var entryOpenCmd = &cobra.Command{
	Use:   "open <folder-id> <index>",
	Short: "Open an asset, run a macro, or select a shortcut's files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := parseIndex(args[1])
		if err != nil {
			return err
		}
		result, err := commands.NewOpenEntryCommand(GetStore(), GetHost(), args[0], index).Execute(context.Background())
		if err != nil {
			return err
		}
		if !result.Valid {
			return fmt.Errorf("%s", result.Message)
		}
		printMessage(result.Message)
		return nil
	},
}

var entryRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Re-resolve every entry and report the invalid ones",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRefreshCommand(GetStore(), GetHost()).Execute(context.Background())
		if err != nil {
			return err
		}
		if result.Invalid > 0 {
			fmt.Println(render.Gold(result.Message))
			return nil
		}
		printMessage(result.Message)
		return nil
	},
}

func parseIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid entry index %q", s)
	}
	return index, nil
}

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddAssetCmd)
	entryCmd.AddCommand(entryAddMacroCmd)
	entryCmd.AddCommand(entryAddShortcutCmd)
	entryCmd.AddCommand(entryRenameCmd)
	entryCmd.AddCommand(entryRemoveCmd)
	entryCmd.AddCommand(entryMoveCmd)
	entryCmd.AddCommand(entryOpenCmd)
	entryCmd.AddCommand(entryRefreshCmd)

	for _, c := range []*cobra.Command{entryAddAssetCmd, entryAddMacroCmd, entryAddShortcutCmd} {
		c.Flags().StringVarP(&entryFolder, "folder", "f", "", "target folder ID (default: first root folder)")
	}
	entryMoveCmd.Flags().IntVarP(&entryTargetIndex, "index", "i", -1, "position in the target folder (-1 appends)")
}
