package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var copyCmd = &cobra.Command{
	Use:   "copy <source> <destination>",
	Short: "Copy a file",
	Long: `Copy duplicates a single file, preserving its permission bits and
last write time. A read-only destination is cleared and replaced when
overwriting is allowed.

With --wait-release the source is first polled until the OS has fully
released it, which papers over the delayed-close behavior some
platforms exhibit right after a writer closes the file.

Examples:
  fsio copy ./build/app.bin ./dist/app.bin
  fsio copy ./build/app.bin ./dist/app.bin --overwrite
  fsio copy ./build/app.bin ./dist/app.bin --wait-release`,
	Args: RequireSourceAndDestination,
	RunE: runCopy,
}

type copyFlagValues struct {
	overwrite   bool
	waitRelease bool
}

var copyFlags copyFlagValues

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().BoolVar(&copyFlags.overwrite, "overwrite", false,
		"Replace the destination if it already exists (default from fsio.yaml)")
	copyCmd.Flags().BoolVar(&copyFlags.waitRelease, "wait-release", false,
		"Wait for the OS to release the source file before copying")
}

func runCopy(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	src, dst := args[0], args[1]

	overwrite := copyFlags.overwrite
	if !cmd.Flags().Changed("overwrite") {
		overwrite = tk.cfg.Transfer.Overwrite
	}

	if !tk.fs.FileExists(src) {
		return fmt.Errorf("%w: %s", fsio.ErrNotFound, src)
	}

	if copyFlags.waitRelease {
		if err := waitForSourceRelease(cmd.Context(), tk, src); err != nil {
			return err
		}
	}

	if !overwrite && tk.fs.FileExists(dst) {
		return fmt.Errorf("%w: %s", fsio.ErrOverwriteDenied, dst)
	}

	if !tk.fs.FileCopy(src, dst, overwrite) {
		return fmt.Errorf("%w: %s -> %s", fsio.ErrCopyFailed, src, dst)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n",
		ui.Render(ui.SuccessStyle, ui.SymbolCheck), src, dst)
	return nil
}

// waitForSourceRelease polls path with the configured release wait as
// the deadline.
func waitForSourceRelease(ctx context.Context, tk *toolkit, path string) error {
	wait, err := tk.cfg.ReleaseWait()
	if err != nil {
		return err
	}
	waitCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()

	tk.logger.Verbose("waiting up to %s for %s to be released", wait, path)
	return tk.fs.WaitForRelease(waitCtx, path)
}
