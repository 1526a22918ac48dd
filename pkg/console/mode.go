package console

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/pihello/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode decides whether escape sequences reach the output.
type ColorMode int

const (
	// ColorAuto enables escapes when the output is a color capable terminal
	ColorAuto ColorMode = iota
	// ColorAlways keeps every escape sequence
	ColorAlways
	// ColorNever strips every escape sequence
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a string into a ColorMode value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "on", "true", "yes":
		return ColorAlways, nil
	case "never", "off", "false", "no":
		return ColorNever, nil
	default:
		return ColorAuto, errors.Newf(errors.ErrInvalidInput, "unknown color mode %q (want auto, always or never)", s).
			WithDetail("color", s)
	}
}

// Enabled reports whether output written to w should carry escapes.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	return DetectColor(w)
}

// DetectColor determines whether w is a terminal that renders colors
func DetectColor(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}
