package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var mkdirsCmd = &cobra.Command{
	Use:   "mkdirs <path>...",
	Short: "Create directory hierarchies",
	Long: `Mkdirs creates every missing level of each path, shallowest first.
Levels that already exist are fine; the command is idempotent. A level
that cannot be created stops that path's walk and leaves the levels
built before it in place.

On network share paths the host prefix is never created.

Examples:
  fsio mkdirs ./build/out/obj
  fsio mkdirs ./dist/bin ./dist/lib ./dist/include`,
	Args: RequireAtLeastOnePath,
	RunE: runMkdirs,
}

func init() {
	rootCmd.AddCommand(mkdirsCmd)
}

func runMkdirs(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}

	builder := tk.pathBuilder()
	out := cmd.OutOrStdout()

	for _, path := range args {
		if !builder.EnsurePathExists(path) {
			return fmt.Errorf("%w: %s", fsio.ErrCreateFailed, path)
		}
		fmt.Fprintf(out, "%s %s\n", ui.Render(ui.SuccessStyle, ui.SymbolCheck), path)
		tk.logger.Verbose("hierarchy in place: %s", path)
	}
	return nil
}
