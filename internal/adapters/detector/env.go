// Package detector provides environment detection for report styling.
package detector

import (
	"io"
	"os"

	"golang.org/x/term"
)

// OutputMode represents how the text report is rendered.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeStyled renders colors and icons.
	ModeStyled
	// ModePlain renders uncolored text.
	ModePlain
)

type fdWriter interface {
	Fd() uintptr
}

// DetectEnvironment returns the recommended output mode for w.
// Writers that are not terminals, CI runs and NO_COLOR all select plain output.
func DetectEnvironment(w io.Writer) OutputMode {
	f, ok := w.(fdWriter)
	isTTY := ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int

	ci := os.Getenv("CI")
	isCI := ci == "true" || ci == "1"

	if _, noColor := os.LookupEnv("NO_COLOR"); noColor || !isTTY || isCI {
		return ModePlain
	}
	return ModeStyled
}

// ResolveMode applies the user's --color flag to auto-detection.
// userFlag should be one of: "auto", "always", "never", or empty.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "always":
		return ModeStyled
	case "never":
		return ModePlain
	default:
		return autoDetected
	}
}

// IsValidFlag reports whether userFlag is a recognized --color value.
func IsValidFlag(userFlag string) bool {
	switch userFlag {
	case "", "auto", "always", "never":
		return true
	default:
		return false
	}
}
