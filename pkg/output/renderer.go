package output

import (
	"bytes"
	"embed"
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/glamour"

	"github.com/arthur-debert/confex/pkg/errors"
	"github.com/arthur-debert/confex/pkg/generator"
	"github.com/arthur-debert/confex/pkg/logging"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

// DefaultSeparator puts one blank line between snippets in text output
const DefaultSeparator = "\n\n"

// Options configures a Renderer
type Options struct {
	Format Format

	// Separator goes between snippets in text output. Empty means
	// DefaultSeparator.
	Separator string

	// Style is the glamour style for terminal output: a standard style name
	// such as "dark", "light" or "notty", or a path to a style file. Empty
	// means auto-detection.
	Style string

	// Width wraps terminal output. Zero leaves lines unwrapped.
	Width int
}

// Renderer writes snippets to a writer in one format
type Renderer struct {
	writer io.Writer
	opts   Options
}

// NewRenderer creates a Renderer for w. FormatAuto is resolved against w
// here, so the choice is made once.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	log := logging.GetLogger("output.Renderer")

	if opts.Format == FormatAuto {
		opts.Format = DetectFormat(w)
		log.Debug().Str("format", opts.Format.String()).Msg("Detected output format")
	}
	if opts.Separator == "" {
		opts.Separator = DefaultSeparator
	}

	return &Renderer{writer: w, opts: opts}
}

// Format returns the resolved format
func (r *Renderer) Format() Format {
	return r.opts.Format
}

// Render formats snippets and writes them. Nothing is written when there
// are no snippets.
func (r *Renderer) Render(snippets []generator.Snippet) error {
	if len(snippets) == 0 {
		return nil
	}

	var out string
	var err error
	switch r.opts.Format {
	case FormatText:
		out = Text(snippets, r.opts.Separator)
	case FormatMarkdown:
		out, err = Markdown(snippets)
	case FormatTerminal:
		out, err = r.terminal(snippets)
	default:
		err = errors.Newf(errors.ErrUnknownFormat, "cannot render format %s", r.opts.Format)
	}
	if err != nil {
		return err
	}

	if _, err := io.WriteString(r.writer, out); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output")
	}
	return nil
}

// Text joins the snippet texts with sep and ends with a newline
func Text(snippets []generator.Snippet, sep string) string {
	if len(snippets) == 0 {
		return ""
	}
	texts := make([]string, len(snippets))
	for i, s := range snippets {
		texts[i] = s.Text
	}
	return strings.Join(texts, sep) + "\n"
}

// Markdown renders each snippet as an optional "## title" heading and a
// code block tagged with the dialect name
func Markdown(snippets []generator.Snippet) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "markdown", snippets); err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to execute markdown template")
	}
	return buf.String(), nil
}

func (r *Renderer) terminal(snippets []generator.Snippet) (string, error) {
	log := logging.GetLogger("output.Renderer")

	md, err := Markdown(snippets)
	if err != nil {
		return "", err
	}

	options := []glamour.TermRendererOption{glamour.WithWordWrap(r.opts.Width)}
	switch {
	case r.opts.Style == "" || r.opts.Style == "auto":
		options = append(options, glamour.WithAutoStyle())
	case isStandardStyle(r.opts.Style):
		options = append(options, glamour.WithStandardStyle(r.opts.Style))
	default:
		options = append(options, glamour.WithStylePath(r.opts.Style))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to create terminal renderer")
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to render markdown")
	}

	log.Trace().Int("markdown", len(md)).Int("rendered", len(out)).Msg("Rendered for terminal")
	return out, nil
}

func isStandardStyle(name string) bool {
	switch name {
	case "dark", "light", "notty", "ascii", "dracula", "pink", "tokyo-night":
		return true
	}
	return false
}
