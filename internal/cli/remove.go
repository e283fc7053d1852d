package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var removeCmd = &cobra.Command{
	Use:   "remove <path>...",
	Short: "Delete files",
	Long: `Remove deletes one or more files. Interactive sessions are asked to
type each file's name to confirm; pass --force to skip the prompts.
Non-interactive sessions (pipelines, CI) require --force.

Directories are not removed by this command.

Examples:
  fsio remove ./build/stale.obj
  fsio remove ./build/a.obj ./build/b.obj --force`,
	Args: RequireAtLeastOnePath,
	RunE: runRemove,
}

var removeForce bool

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false,
		"Remove without interactive confirmation")
}

func runRemove(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}

	approver, err := selectApprover(removeForce)
	if err != nil {
		return err
	}

	for _, path := range args {
		if !tk.fs.PathExists(path) {
			return fmt.Errorf("%w: %s", fsio.ErrNotFound, path)
		}
		if tk.fs.IsDirectory(path) {
			return fmt.Errorf("%s is a directory, remove only deletes files", path)
		}

		approved, err := approver.RequestApproval(cmd.Context(), path)
		if err != nil {
			return fmt.Errorf("approval failed: %w", err)
		}
		if !approved {
			return fmt.Errorf("%w: %s", fsio.ErrApprovalDenied, path)
		}

		if !tk.fs.FileDelete(path) {
			return fmt.Errorf("failed to remove %s", path)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s removed %s\n",
			ui.Render(ui.SuccessStyle, ui.SymbolCheck), path)
	}
	return nil
}

// selectApprover picks the confirmation strategy. Forced approval is
// explicit via --force; without a terminal there is nobody to ask.
func selectApprover(force bool) (fsio.Approver, error) {
	if force {
		return ui.NewForcedApprover(), nil
	}
	if !ui.IsInteractive() {
		return nil, fmt.Errorf("%w: no terminal attached, pass --force to remove non-interactively",
			fsio.ErrApprovalDenied)
	}
	return ui.NewInteractiveApprover(), nil
}
