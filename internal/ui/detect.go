package ui

import (
	"os"

	"golang.org/x/term"
)

// Mode says whether fsio may prompt and render styled output.
type Mode int

const (
	// ModeNonInteractive suits pipelines, scripts, and redirected streams.
	ModeNonInteractive Mode = iota
	// ModeInteractive means a human is at the terminal.
	ModeInteractive
)

// DetectMode decides the interaction mode from the environment and the
// attached streams. FSIO_NON_INTERACTIVE=1 forces non-interactive, as do
// the common CI and NO_COLOR conventions; otherwise both stdin and
// stdout must be terminals for prompts to make sense.
func DetectMode() Mode {
	if os.Getenv("FSIO_NON_INTERACTIVE") == "1" {
		return ModeNonInteractive
	}
	for _, env := range []string{"CI", "NO_COLOR"} {
		if os.Getenv(env) != "" {
			return ModeNonInteractive
		}
	}
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		if !term.IsTerminal(int(f.Fd())) {
			return ModeNonInteractive
		}
	}
	return ModeInteractive
}

// IsInteractive reports whether prompting the user is possible.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
