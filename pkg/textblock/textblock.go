package textblock

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultIndentUnit is prepended once per indentation level by Indent.
const DefaultIndentUnit = "\t"

// Block is either a single line or a stack of lines.
//
// The zero value is an empty stack of lines and renders as "".
type Block struct {
	lines []string
	multi bool
}

// Line builds a block from s. A string without line breaks becomes a single
// line; anything else is split into a stack of lines.
func Line(s string) Block {
	if !strings.Contains(s, "\n") {
		return Block{lines: []string{s}}
	}
	return Block{lines: splitLines(s), multi: true}
}

// Lines builds a stack from the given lines. Lines(), with no arguments, is a
// stack with zero lines.
func Lines(lines ...string) Block {
	return Block{lines: append([]string(nil), lines...), multi: true}
}

// Empty returns a single empty line.
func Empty() Block {
	return Line("")
}

// EmptyLines returns a stack of n empty lines.
func EmptyLines(n int) Block {
	if n < 0 {
		n = 0
	}
	return Block{lines: make([]string, n), multi: true}
}

// splitLines splits on "\n", drops a trailing "\r" from each line and does
// not produce an extra empty line for a final newline.
func splitLines(s string) []string {
	parts := strings.Split(s, "\n")
	if len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}

// IsMulti reports whether b is a stack of lines rather than a single line.
func (b Block) IsMulti() bool {
	return b.multi || b.lines == nil
}

// Len returns the number of lines in b.
func (b Block) Len() int {
	return len(b.lines)
}

// Lines returns a copy of the lines in b.
func (b Block) Lines() []string {
	return append([]string(nil), b.lines...)
}

// String joins the lines with "\n".
func (b Block) String() string {
	return strings.Join(b.lines, "\n")
}

// Map applies f to every line. A single line stays a single line unless f
// introduces a line break.
func (b Block) Map(f func(string) string) Block {
	if !b.IsMulti() {
		return Line(f(b.lines[0]))
	}
	out := make([]string, len(b.lines))
	for i, l := range b.lines {
		out[i] = f(l)
	}
	return Block{lines: out, multi: true}
}

// Indent prefixes every line with levels copies of DefaultIndentUnit.
func (b Block) Indent(levels int) Block {
	return b.IndentWith(DefaultIndentUnit, levels)
}

// IndentWith prefixes every line with levels copies of unit.
func (b Block) IndentWith(unit string, levels int) Block {
	if levels <= 0 {
		return b
	}
	prefix := strings.Repeat(unit, levels)
	return b.Map(func(s string) string { return prefix + s })
}

// Merge stacks other below b. The result is always a stack of lines.
func (b Block) Merge(other Block) Block {
	lines := make([]string, 0, len(b.lines)+len(other.lines))
	lines = append(lines, b.lines...)
	lines = append(lines, other.lines...)
	return Block{lines: lines, multi: true}
}

// AttachRight places other to the right of b, separated by one space.
//
// When other has more lines than b, the overflow lines are padded so they
// line up under the first attached line. When b has more lines than other,
// the overflow lines of b are kept as they are.
func (b Block) AttachRight(other Block) Block {
	switch {
	case !b.IsMulti() && !other.IsMulti():
		return Line(b.lines[0] + " " + other.lines[0])
	case !b.IsMulti():
		return attachLineToStack(b.lines[0], other.lines)
	case !other.IsMulti():
		return attachStackToLine(b.lines, other.lines[0])
	default:
		return attachStacks(b.lines, other.lines)
	}
}

func attachLineToStack(left string, right []string) Block {
	switch len(right) {
	case 0:
		return Line(left)
	case 1:
		return Line(left).AttachRight(Line(right[0]))
	}
	pad := Line(strings.Repeat(" ", width(left)))
	out := Line(left).AttachRight(Line(right[0]))
	for _, r := range right[1:] {
		out = out.Merge(pad.AttachRight(Line(r)))
	}
	return out
}

func attachStackToLine(left []string, right string) Block {
	switch len(left) {
	case 0:
		return Line(right)
	case 1:
		return Line(left[0]).AttachRight(Line(right))
	}
	return Line(left[0]).AttachRight(Line(right)).Merge(Lines(left[1:]...))
}

func attachStacks(left, right []string) Block {
	switch {
	case len(left) == 0 && len(right) == 0:
		return Empty()
	case len(left) == 0:
		return Lines(right...)
	case len(right) == 0:
		return Lines(left...)
	}

	n := min(len(left), len(right))
	out := Line(left[0]).AttachRight(Line(right[0]))
	for i := 1; i < n; i++ {
		out = out.Merge(Line(left[i]).AttachRight(Line(right[i])))
	}

	if len(left) > n {
		return out.Merge(Lines(left[n:]...))
	}
	if len(right) > n {
		pad := Line(strings.Repeat(" ", maxWidth(left)))
		for _, r := range right[n:] {
			out = out.Merge(pad.AttachRight(Line(r)))
		}
	}
	return out
}

func width(s string) int {
	return lipgloss.Width(s)
}

func maxWidth(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, width(l))
	}
	return w
}
