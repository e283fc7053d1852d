package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/ui"
	"github.com/vvka-141/fsio/pkg/fsio"
)

var listCmd = &cobra.Command{
	Use:   "list <path>",
	Short: "List files matching a wildcard pattern",
	Long: `List enumerates the regular files under a directory.

The pattern applies to the filename only, never across separators:
'*' matches any run of characters, '?' matches exactly one. Directories
are never listed, even when the pattern matches their name. A directory
that does not exist or cannot be opened contributes nothing; use
--verbose to see which directories were skipped.

Examples:
  # All files directly inside ./build
  fsio list ./build

  # Every object file in the tree
  fsio list ./build --pattern "*.obj" --recursive

  # Sizes and timestamps included
  fsio list ./build -r -l`,
	Args: RequirePath,
	RunE: runList,
}

type listFlagValues struct {
	pattern   string
	recursive bool
	long      bool
}

var listFlags listFlagValues

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFlags.pattern, "pattern", "p", "",
		"Wildcard pattern applied to filenames (default from fsio.yaml, or '*')")
	listCmd.Flags().BoolVarP(&listFlags.recursive, "recursive", "r", false,
		"Descend into subdirectories")
	listCmd.Flags().BoolVarP(&listFlags.long, "long", "l", false,
		"Show size, last write time and the read-only attribute")
}

func runList(cmd *cobra.Command, args []string) error {
	tk, err := newToolkit(cmd)
	if err != nil {
		return err
	}

	pattern := listFlags.pattern
	if pattern == "" {
		pattern = tk.cfg.List.Pattern
	}
	recursive := listFlags.recursive || tk.cfg.List.Recursive

	out := cmd.OutOrStdout()
	e := tk.enumerator()

	if listFlags.long {
		var entries []fsio.DirEntry
		if !e.GetFilesEx(args[0], pattern, recursive, &entries) {
			tk.logger.Verbose("no matches for %q under %s", pattern, args[0])
			return nil
		}
		for _, entry := range entries {
			attr := "rw"
			if entry.IsReadOnly() {
				attr = "ro"
			}
			fmt.Fprintf(out, "%s %10d %s %s\n",
				ui.Render(ui.AttributeStyle, attr),
				entry.Size,
				entry.LastWriteTime.Format("2006-01-02 15:04:05"),
				ui.Render(ui.PathStyle, entry.Path))
		}
		return nil
	}

	var results []string
	if !e.GetFiles(args[0], pattern, recursive, &results) {
		tk.logger.Verbose("no matches for %q under %s", pattern, args[0])
		return nil
	}
	for _, path := range results {
		fmt.Fprintln(out, path)
	}
	return nil
}
