package output

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/confex/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks FormatTerminal on a colour terminal, FormatText otherwise
	FormatAuto Format = iota
	// FormatText writes the rendered snippets as they are
	FormatText
	// FormatMarkdown wraps each snippet in a fenced code block under its title
	FormatMarkdown
	// FormatTerminal renders the markdown form for the terminal
	FormatTerminal
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatTerminal:
		return "term"
	default:
		return "unknown"
	}
}

// FormatNames lists the accepted format names
func FormatNames() []string {
	return []string{"auto", "text", "markdown", "term"}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "text", "plain":
		return FormatText, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "term", "terminal":
		return FormatTerminal, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrUnknownFormat, "unknown format: %s", s).
			WithDetail("available", FormatNames())
	}
}

// DetectFormat determines the format for w from the environment and the
// terminal capabilities. Anything but a terminal gets plain text.
func DetectFormat(w io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	f, ok := w.(*os.File)
	if !ok {
		return FormatText
	}

	// Check if we're being piped or redirected
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(f).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
