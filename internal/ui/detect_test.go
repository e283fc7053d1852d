package ui

import (
	"testing"
)

func clearModeEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FSIO_NON_INTERACTIVE", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")
}

func TestDetectMode_EnvOverride(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("FSIO_NON_INTERACTIVE", "1")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("CI", "true")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NoColor(t *testing.T) {
	clearModeEnv(t)
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdin/stdout are not terminals
	clearModeEnv(t)

	if got := DetectMode(); got != ModeNonInteractive {
		t.Errorf("DetectMode() = %d, want ModeNonInteractive (no terminal in test)", got)
	}
}

func TestIsInteractive_ReturnsFalseInTests(t *testing.T) {
	clearModeEnv(t)

	if IsInteractive() {
		t.Error("IsInteractive() = true in test environment, want false")
	}
}

func TestRender_PlainWhenNonInteractive(t *testing.T) {
	clearModeEnv(t)

	if got := Render(ErrorStyle, "plain"); got != "plain" {
		t.Errorf("Render() = %q, want unstyled text when non-interactive", got)
	}
}
