package schema

import (
	"github.com/arthur-debert/confex/pkg/node"
)

// Option configures a node built with Node.
type Option func(node.Node) node.Node

// Tabs indents the node by n indent units.
func Tabs(n int) Option {
	return func(nd node.Node) node.Node {
		return nd.WithIndent(n)
	}
}

// Top places a comment block above the node. One line stays a single line,
// several lines form a block. Lines are used as given, markers included.
func Top(lines ...string) Option {
	return func(nd node.Node) node.Node {
		return nd.WithTopComment(lines...)
	}
}

// Right places a comment block beside the node.
func Right(lines ...string) Option {
	return func(nd node.Node) node.Node {
		return nd.WithRightComment(lines...)
	}
}

// Node wraps v in a node and applies opts in order.
func Node(v node.Value, opts ...Option) node.Node {
	n := node.New(v)
	for _, opt := range opts {
		if opt != nil {
			n = opt(n)
		}
	}
	return n
}
