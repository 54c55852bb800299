package formatter

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/confex/pkg/node"
	"github.com/arthur-debert/confex/pkg/textblock"
)

// TOML renders "key = value" pairs and "# " comments.
type TOML struct{}

func (TOML) Name() string      { return "toml" }
func (TOML) Separator() string { return " = " }

func (TOML) FormatComment(text textblock.Block) textblock.Block {
	return PrefixLines("# ")(text)
}

// YAML renders "key: value" pairs and "# " comments, and indents with two
// spaces since YAML does not allow tabs there.
type YAML struct{}

func (YAML) Name() string       { return "yaml" }
func (YAML) Separator() string  { return ": " }
func (YAML) IndentUnit() string { return "  " }

func (YAML) FormatComment(text textblock.Block) textblock.Block {
	return PrefixLines("# ")(text)
}

// INI renders "key = value" pairs and "; " comments.
type INI struct{}

func (INI) Name() string      { return "ini" }
func (INI) Separator() string { return " = " }

func (INI) FormatComment(text textblock.Block) textblock.Block {
	return PrefixLines("; ")(text)
}

// XML renders named numbers as elements and comments as one XML comment
// per line.
type XML struct{}

func (XML) Name() string       { return "xml" }
func (XML) Separator() string  { return "" }
func (XML) IndentUnit() string { return "  " }

func (XML) FormatComment(text textblock.Block) textblock.Block {
	return text.Map(func(s string) string {
		return writeXML(func(doc *etree.Document) {
			doc.CreateComment(" " + sanitizeComment(s) + " ")
		})
	})
}

func (XML) FormatNumber(n node.Number) textblock.Block {
	if !n.HasName() {
		return textblock.Line(n.Literal())
	}
	return textblock.Line(writeXML(func(doc *etree.Document) {
		doc.CreateElement(n.Name).SetText(n.Literal())
	}))
}

func writeXML(build func(doc *etree.Document)) string {
	doc := etree.NewDocument()
	build(doc)
	s, err := doc.WriteToString()
	if err != nil {
		// strings.Builder never fails
		return ""
	}
	return s
}

// sanitizeComment breaks up "--", which may not appear inside an XML comment.
func sanitizeComment(s string) string {
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "- -")
	}
	return s
}
