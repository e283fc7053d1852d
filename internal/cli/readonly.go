package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var readonlyCmd = &cobra.Command{
	Use:   "readonly <path>",
	Short: "Set or clear the read-only attribute",
	Long: `Readonly marks a file read-only, or writable again with --clear.
Setting an attribute the file already has is success.

Examples:
  fsio readonly ./dist/app.bin
  fsio readonly ./dist/app.bin --clear`,
	Args: RequirePath,
	RunE: runReadonly,
}

var readonlyClear bool

func init() {
	rootCmd.AddCommand(readonlyCmd)

	readonlyCmd.Flags().BoolVar(&readonlyClear, "clear", false,
		"Make the file writable instead of read-only")
}

func runReadonly(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	path := args[0]

	if !tk.fs.FileExists(path) {
		return fmt.Errorf("%w: %s", fsio.ErrNotFound, path)
	}

	if !tk.fs.SetReadOnly(path, !readonlyClear) {
		return fmt.Errorf("failed to change attributes of %s", path)
	}

	state := "read-only"
	if readonlyClear {
		state = "writable"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n",
		ui.Render(ui.SuccessStyle, ui.SymbolCheck), path, state)
	return nil
}
