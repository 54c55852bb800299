// Package formatter turns nodes into text blocks for a given output dialect.
//
// A dialect implements Dialect, which is the minimum needed to render
// anything: a name, the named-value separator and comment rendering.
// Optional interfaces override the defaults for the other kinds of value:
//
//   - [BlankFormatter]: a single blank line (default: one empty line)
//   - [BlankRunFormatter]: a run of blank lines (default: n empty lines)
//   - [NumberFormatter]: numbers (default: "name<sep>value" or the bare value)
//   - [Indenter]: the indentation unit (default: a tab)
//
// The order in which a node is assembled is fixed and shared by every
// dialect; see [Format].
package formatter

import (
	"github.com/arthur-debert/confex/pkg/node"
	"github.com/arthur-debert/confex/pkg/textblock"
)

// Dialect is the required part of an output dialect.
type Dialect interface {
	// Name identifies the dialect in the registry and in fenced code blocks.
	Name() string

	// Separator goes between a number's name and its value.
	Separator() string

	// FormatComment renders a comment block, typically by prefixing each
	// line with the comment marker.
	FormatComment(text textblock.Block) textblock.Block
}

type BlankFormatter interface {
	FormatBlank() textblock.Block
}

type BlankRunFormatter interface {
	FormatBlankRun(count int) textblock.Block
}

type NumberFormatter interface {
	FormatNumber(n node.Number) textblock.Block
}

type Indenter interface {
	IndentUnit() string
}

// Format renders n with d:
//
//  1. the value is rendered by the dialect,
//  2. the top block is stacked above it,
//  3. the right block is attached to the result of step 2,
//  4. the whole block is indented once.
//
// Top and right blocks are used verbatim: they carry their own comment
// markers. A Node without a value renders as a block with no lines.
func Format(d Dialect, n node.Node) textblock.Block {
	if n.Value == nil {
		return textblock.Lines()
	}

	b := n.Value.Accept(valueRenderer{d: d})

	if n.Top != nil {
		b = n.Top.Merge(b)
	}
	if n.Right != nil {
		b = b.AttachRight(*n.Right)
	}

	return b.IndentWith(IndentUnit(d), n.Indent)
}

// IndentUnit returns the unit d indents with.
func IndentUnit(d Dialect) string {
	if i, ok := d.(Indenter); ok {
		return i.IndentUnit()
	}
	return textblock.DefaultIndentUnit
}

// DefaultNumber is the number rendering used when a dialect has no
// NumberFormatter.
func DefaultNumber(separator string, n node.Number) textblock.Block {
	if n.HasName() {
		return textblock.Line(n.Name + separator + n.Literal())
	}
	return textblock.Line(n.Literal())
}

// PrefixLines returns a comment renderer that puts marker before each line.
func PrefixLines(marker string) func(textblock.Block) textblock.Block {
	return func(text textblock.Block) textblock.Block {
		return text.Map(func(s string) string { return marker + s })
	}
}

// valueRenderer dispatches node values to the dialect hooks, falling back
// to the defaults.
type valueRenderer struct {
	d Dialect
}

var _ node.Visitor = valueRenderer{}

func (v valueRenderer) VisitComment(c node.Comment) textblock.Block {
	return v.d.FormatComment(c.Text)
}

func (v valueRenderer) VisitBlank() textblock.Block {
	if f, ok := v.d.(BlankFormatter); ok {
		return f.FormatBlank()
	}
	return textblock.Empty()
}

func (v valueRenderer) VisitBlankRun(count int) textblock.Block {
	if f, ok := v.d.(BlankRunFormatter); ok {
		return f.FormatBlankRun(count)
	}
	return textblock.EmptyLines(count)
}

func (v valueRenderer) VisitNumber(n node.Number) textblock.Block {
	if f, ok := v.d.(NumberFormatter); ok {
		return f.FormatNumber(n)
	}
	return DefaultNumber(v.d.Separator(), n)
}
