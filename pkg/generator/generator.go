// Package generator renders schemas, ordered lists of examples, through a
// formatter dialect.
package generator

import (
	"github.com/arthur-debert/confex/pkg/formatter"
	"github.com/arthur-debert/confex/pkg/logging"
	"github.com/arthur-debert/confex/pkg/node"
	"github.com/arthur-debert/confex/pkg/textblock"
)

// Example is an ordered group of nodes rendered as one snippet. Title is
// only used by documentation output.
type Example struct {
	Title string
	Nodes []node.Node
}

// NewExample returns an example holding nodes, in order.
func NewExample(nodes ...node.Node) Example {
	return Example{Nodes: append([]node.Node(nil), nodes...)}
}

// WithTitle returns a copy of e with a title.
func (e Example) WithTitle(title string) Example {
	e.Title = title
	return e
}

// Add returns a copy of e with nodes appended.
func (e Example) Add(nodes ...node.Node) Example {
	out := make([]node.Node, 0, len(e.Nodes)+len(nodes))
	out = append(out, e.Nodes...)
	e.Nodes = append(out, nodes...)
	return e
}

// AddComment returns a copy of e with a comment node appended.
func (e Example) AddComment(lines ...string) Example {
	return e.Add(node.NewComment(lines...))
}

// Render formats every node with d and stacks the results. ok is false when
// e has no nodes.
func (e Example) Render(d formatter.Dialect) (block textblock.Block, ok bool) {
	for i, n := range e.Nodes {
		b := formatter.Format(d, n)
		if i == 0 {
			block = b
			continue
		}
		block = block.Merge(b)
	}
	return block, len(e.Nodes) > 0
}

// Schema is the ordered list of examples to render.
type Schema []Example

// Snippet is one rendered example.
type Snippet struct {
	Title   string
	Dialect string
	Text    string
}

// Generator renders schemas with one dialect.
type Generator struct {
	dialect formatter.Dialect
}

// New returns a Generator for d.
func New(d formatter.Dialect) *Generator {
	return &Generator{dialect: d}
}

// ForDialect looks d up by name or alias.
func ForDialect(name string) (*Generator, error) {
	d, err := formatter.Lookup(name)
	if err != nil {
		return nil, err
	}
	return New(d), nil
}

// Dialect returns the dialect g renders with.
func (g *Generator) Dialect() formatter.Dialect {
	return g.dialect
}

// Generate renders every example of s. Examples without nodes are dropped,
// so the result may be shorter than s.
func (g *Generator) Generate(s Schema) []string {
	snippets := g.Render(s)
	out := make([]string, len(snippets))
	for i, sn := range snippets {
		out[i] = sn.Text
	}
	return out
}

// Render is Generate keeping titles and the dialect name.
func (g *Generator) Render(s Schema) []Snippet {
	logger := logging.GetLogger("generator")
	out := make([]Snippet, 0, len(s))

	for i, ex := range s {
		block, ok := ex.Render(g.dialect)
		if !ok {
			logger.Debug().Int("example", i).Str("title", ex.Title).Msg("Skipping example without nodes")
			continue
		}
		out = append(out, Snippet{
			Title:   ex.Title,
			Dialect: g.dialect.Name(),
			Text:    block.String(),
		})
	}

	logger.Debug().
		Str("dialect", g.dialect.Name()).
		Int("examples", len(s)).
		Int("rendered", len(out)).
		Msg("Schema rendered")
	return out
}
