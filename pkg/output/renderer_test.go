package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/confex/pkg/errors"
	"github.com/arthur-debert/confex/pkg/generator"
)

var snippets = []generator.Snippet{
	{Title: "Numbers", Dialect: "toml", Text: "port = 8080 # default"},
	{Dialect: "toml", Text: "# untitled\nretries = 3"},
}

func TestText(t *testing.T) {
	assert.Equal(t, "port = 8080 # default\n\n# untitled\nretries = 3\n", Text(snippets, DefaultSeparator))
	assert.Equal(t, "port = 8080 # default\n---\n# untitled\nretries = 3\n", Text(snippets, "\n---\n"))
	assert.Equal(t, "", Text(nil, DefaultSeparator))
}

func TestMarkdown(t *testing.T) {
	got, err := Markdown(snippets)
	require.NoError(t, err)

	want := "## Numbers\n\n" +
		"```toml\nport = 8080 # default\n```\n" +
		"\n" +
		"```toml\n# untitled\nretries = 3\n```\n"
	assert.Equal(t, want, got)

	empty, err := Markdown(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRendererFormats(t *testing.T) {
	tests := []struct {
		name        string
		opts        Options
		wantContent []string
		notWant     []string
	}{
		{
			name:        "text",
			opts:        Options{Format: FormatText},
			wantContent: []string{"port = 8080 # default\n\n# untitled"},
			notWant:     []string{"```", "##"},
		},
		{
			name:        "text with separator",
			opts:        Options{Format: FormatText, Separator: "\n\n\n"},
			wantContent: []string{"# default\n\n\n# untitled"},
		},
		{
			name:        "markdown",
			opts:        Options{Format: FormatMarkdown},
			wantContent: []string{"## Numbers", "```toml"},
		},
		{
			name:        "terminal",
			opts:        Options{Format: FormatTerminal, Style: "notty"},
			wantContent: []string{"Numbers", "8080", "retries"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewRenderer(&buf, tt.opts)
			require.NoError(t, r.Render(snippets))

			out := buf.String()
			for _, want := range tt.wantContent {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.notWant {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestRendererWritesNothingForNoSnippets(t *testing.T) {
	for _, f := range []Format{FormatText, FormatMarkdown, FormatTerminal} {
		var buf bytes.Buffer
		require.NoError(t, NewRenderer(&buf, Options{Format: f}).Render(nil))
		assert.Empty(t, buf.String(), f.String())
	}
}

func TestRendererAutoFormat(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, Options{})
	assert.Equal(t, FormatText, r.Format(), "a buffer is not a terminal")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) { return 0, os.ErrClosed }

func TestRendererWriteError(t *testing.T) {
	err := NewRenderer(failingWriter{}, Options{Format: FormatText}).Render(snippets)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))
}

func TestRendererUnknownFormat(t *testing.T) {
	err := NewRenderer(&bytes.Buffer{}, Options{Format: Format(42)}).Render(snippets)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatAuto},
		{"auto", FormatAuto},
		{"text", FormatText},
		{"plain", FormatText},
		{"Markdown", FormatMarkdown},
		{"md", FormatMarkdown},
		{"term", FormatTerminal},
		{"terminal", FormatTerminal},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseFormat("json")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownFormat))
	assert.Equal(t, FormatNames(), errors.GetErrorDetails(err)["available"])
}

func TestFormatString(t *testing.T) {
	for _, name := range FormatNames() {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, name, f.String())
	}
	assert.Equal(t, "unknown", Format(42).String())
}

func TestDetectFormat(t *testing.T) {
	t.Run("non file writer", func(t *testing.T) {
		assert.Equal(t, FormatText, DetectFormat(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()
		assert.Equal(t, FormatText, DetectFormat(f))
	})

	t.Run("NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, FormatText, DetectFormat(os.Stdout))
	})
}
