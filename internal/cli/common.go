package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fsio/internal/config"
	"github.com/vvka-141/fsio/internal/files/enumerator"
	"github.com/vvka-141/fsio/internal/files/filesystem"
	"github.com/vvka-141/fsio/internal/files/hierarchy"
	"github.com/vvka-141/fsio/internal/logging"
	"github.com/vvka-141/fsio/internal/wildcard"
	"github.com/vvka-141/fsio/pkg/fsio"
)

// toolkit bundles the wired components every command needs.
type toolkit struct {
	fs     *filesystem.AferoFileSystem
	logger fsio.Logger
	cfg    *config.ProjectConfig
}

// newToolkit loads .env and fsio.yaml from the working directory and
// wires the OS-backed filesystem with a console logger.
func newToolkit(cmd *cobra.Command) (*toolkit, error) {
	_ = godotenv.Load()

	verbose := getVerboseFlag(cmd)

	cfg, err := config.LoadOrDefault(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	if cfg.Verbose {
		verbose = true
	}

	return &toolkit{
		fs:     filesystem.NewOSFileSystem(),
		logger: logging.NewConsoleLogger(verbose),
		cfg:    cfg,
	}, nil
}

// enumerator builds a file enumerator whose directory-level failures are
// surfaced through the verbose log instead of aborting the walk.
func (tk *toolkit) enumerator() *enumerator.Enumerator {
	return enumerator.New(tk.fs, wildcard.New(),
		enumerator.WithOnError(func(dir string, err error) {
			tk.logger.Verbose("skipping %s: %v", dir, err)
		}))
}

// pathBuilder builds a hierarchy builder that logs the failing level.
func (tk *toolkit) pathBuilder() *hierarchy.Builder {
	return hierarchy.New(tk.fs,
		hierarchy.WithOnError(func(level string, err error) {
			tk.logger.Error("cannot create %s: %v", level, err)
		}))
}
