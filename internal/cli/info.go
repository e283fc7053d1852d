package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var infoCmd = &cobra.Command{
	Use:   "info <path>",
	Short: "Show metadata for a single path",
	Long: `Info prints the size, last write time, read-only attribute and kind
of a single path.

Example:
  fsio info ./build/app.bin`,
	Args: RequirePath,
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}

	entry, ok := tk.fs.GetFileInfo(args[0])
	if !ok {
		return fmt.Errorf("%w: %s", fsio.ErrNotFound, args[0])
	}

	kind := "file"
	if entry.IsDir() {
		kind = "directory"
	}
	attr := "read-write"
	if entry.IsReadOnly() {
		attr = "read-only"
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s\n", ui.Render(ui.HeaderStyle, "Path:"), entry.Path)
	fmt.Fprintf(out, "%s %s\n", ui.Render(ui.HeaderStyle, "Kind:"), kind)
	fmt.Fprintf(out, "%s %d\n", ui.Render(ui.HeaderStyle, "Size:"), entry.Size)
	fmt.Fprintf(out, "%s %s\n", ui.Render(ui.HeaderStyle, "Modified:"),
		entry.LastWriteTime.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "%s %s\n", ui.Render(ui.HeaderStyle, "Attributes:"), attr)
	return nil
}
