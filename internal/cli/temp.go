package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/pkg/fsio"
)

var tempCmd = &cobra.Command{
	Use:   "temp",
	Short: "Show the temp directory or claim a unique path in it",
	Long: `Temp prints the platform temp directory. With --create it claims a
unique file path inside it and prints that instead; the file exists on
return so concurrent callers cannot collide.

Examples:
  fsio temp
  fsio temp --create
  fsio temp --create --prefix buildcache`,
	Args: cobra.NoArgs,
	RunE: runTemp,
}

type tempFlagValues struct {
	create bool
	prefix string
}

var tempFlags tempFlagValues

func init() {
	rootCmd.AddCommand(tempCmd)

	tempCmd.Flags().BoolVar(&tempFlags.create, "create", false,
		"Claim a unique file path inside the temp directory")
	tempCmd.Flags().StringVar(&tempFlags.prefix, "prefix", fsio.DefaultTempPrefix,
		"Filename prefix for --create")
}

func runTemp(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !tempFlags.create {
		fmt.Fprintln(out, tk.fs.GetTempDir())
		return nil
	}

	path, err := tk.fs.CreateTempPath(tempFlags.prefix)
	if err != nil {
		return fmt.Errorf("failed to claim temp path: %w", err)
	}
	fmt.Fprintln(out, path)
	return nil
}
