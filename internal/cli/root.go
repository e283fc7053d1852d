package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  __      _
 / _|___ (_) ___
| |_/ __|| |/ _ \
|  _\__ \| | (_) |
|_| |___/|_|\___/`

var rootCmd = &cobra.Command{
	Use:   "fsio",
	Short: "Cross-platform filesystem toolkit for build automation",
	Long: asciiLogo + `

fsio enumerates, materializes and transfers files the same way on every
platform: wildcard directory listings, level-by-level directory creation,
and copy/move/remove primitives with predictable failure semantics.

Paths are normalized to the native separator; results never include
directories or the synthetic '.' and '..' entries.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  12 - User denied removal approval
  20 - Path not found
  21 - Directory creation failed
  22 - File transfer failed
  23 - File release wait timed out`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for fsio")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
