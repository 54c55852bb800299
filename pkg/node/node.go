// Package node defines the values that make up an example snippet and the
// Node wrapper that carries indentation and comments for one of them.
package node

import "github.com/arthur-debert/confex/pkg/textblock"

// Node is one entry of an example. Builders return a modified copy, so a
// Node can be reused as a template.
type Node struct {
	Value  Value
	Indent int

	// Top is rendered above the value, Right next to it. Nil means absent.
	Top   *textblock.Block
	Right *textblock.Block
}

// New wraps v in a Node with no indentation and no comments.
func New(v Value) Node {
	return Node{Value: v}
}

// NewComment returns a comment node. Each argument is one line; an argument
// containing line breaks contributes several lines.
func NewComment(lines ...string) Node {
	return New(Comment{Text: commentBlock(lines)})
}

// NewInteger returns an unnamed integer node.
func NewInteger[T Integers](v T) Node {
	return New(IntegerValue(v))
}

// NewFloat returns an unnamed float node.
func NewFloat[T Floats](v T) Node {
	return New(FloatValue(v))
}

// NewBlank returns a node rendering one empty line.
func NewBlank() Node {
	return New(Blank{})
}

// NewBlankRun returns a node rendering count empty lines.
func NewBlankRun(count int) Node {
	if count < 0 {
		count = 0
	}
	return New(BlankRun{Count: count})
}

// WithIndent returns a copy of n indented by levels.
func (n Node) WithIndent(levels int) Node {
	if levels < 0 {
		levels = 0
	}
	n.Indent = levels
	return n
}

// WithTopComment returns a copy of n with a comment above the value.
func (n Node) WithTopComment(lines ...string) Node {
	b := commentBlock(lines)
	n.Top = &b
	return n
}

// WithRightComment returns a copy of n with a comment to the right of the
// value.
func (n Node) WithRightComment(lines ...string) Node {
	b := commentBlock(lines)
	n.Right = &b
	return n
}

// WithTopBlock and WithRightBlock attach an already built block.
func (n Node) WithTopBlock(b textblock.Block) Node {
	n.Top = &b
	return n
}

func (n Node) WithRightBlock(b textblock.Block) Node {
	n.Right = &b
	return n
}

// commentBlock keeps a single line as a line and anything else as a stack.
func commentBlock(lines []string) textblock.Block {
	if len(lines) == 1 {
		return textblock.Line(lines[0])
	}
	var out []string
	for _, l := range lines {
		out = append(out, textblock.Line(l).Lines()...)
	}
	return textblock.Lines(out...)
}
