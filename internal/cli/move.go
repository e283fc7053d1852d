package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var moveCmd = &cobra.Command{
	Use:   "move <source> <destination>",
	Short: "Move or rename a file",
	Long: `Move renames a file, replacing the destination if one exists.

With --wait-release the source is first polled until the OS has fully
released it.

Example:
  fsio move ./build/app.tmp ./build/app.bin`,
	Args: RequireSourceAndDestination,
	RunE: runMove,
}

var moveWaitRelease bool

func init() {
	rootCmd.AddCommand(moveCmd)

	moveCmd.Flags().BoolVar(&moveWaitRelease, "wait-release", false,
		"Wait for the OS to release the source file before moving")
}

func runMove(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	src, dst := args[0], args[1]

	if !tk.fs.PathExists(src) {
		return fmt.Errorf("%w: %s", fsio.ErrNotFound, src)
	}

	if moveWaitRelease {
		if err := waitForSourceRelease(cmd.Context(), tk, src); err != nil {
			return err
		}
	}

	if !tk.fs.FileMove(src, dst) {
		return fmt.Errorf("%w: %s -> %s", fsio.ErrCopyFailed, src, dst)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n",
		ui.Render(ui.SuccessStyle, ui.SymbolCheck), src, dst)
	return nil
}
