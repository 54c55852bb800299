package node

import (
	"math"
	"strconv"

	"github.com/arthur-debert/confex/pkg/textblock"
)

// Value is the content of a Node. The set of values is closed: Comment,
// Blank, BlankRun and Number are the only implementations.
type Value interface {
	// Accept calls the Visitor method matching the concrete value.
	Accept(v Visitor) textblock.Block
	sealed()
}

// Visitor renders each kind of Value. Adding a kind of Value adds a method
// here, so every renderer has to handle it before it compiles.
type Visitor interface {
	VisitComment(c Comment) textblock.Block
	VisitBlank() textblock.Block
	VisitBlankRun(count int) textblock.Block
	VisitNumber(n Number) textblock.Block
}

// Comment is a block of free text rendered with the dialect's comment marker.
type Comment struct {
	Text textblock.Block
}

// Blank is a single empty line.
type Blank struct{}

// BlankRun is Count empty lines.
type BlankRun struct {
	Count int
}

func (c Comment) Accept(v Visitor) textblock.Block  { return v.VisitComment(c) }
func (Blank) Accept(v Visitor) textblock.Block      { return v.VisitBlank() }
func (r BlankRun) Accept(v Visitor) textblock.Block { return v.VisitBlankRun(r.Count) }
func (n Number) Accept(v Visitor) textblock.Block   { return v.VisitNumber(n) }

func (Comment) sealed()  {}
func (Blank) sealed()    {}
func (BlankRun) sealed() {}
func (Number) sealed()   {}

// NumberKind tells which field of a Number holds its value.
type NumberKind int

const (
	IntegerKind NumberKind = iota
	FloatKind
)

// Number is an integer or a float, optionally named. An empty Name means
// the number is unnamed.
type Number struct {
	Kind  NumberKind
	Int   int64
	Float float64
	Name  string
}

// Integers lists the integer types that widen to int64 without loss.
type Integers interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

// Floats lists the float types accepted by FloatValue.
type Floats interface {
	~float32 | ~float64
}

// IntegerValue wraps an integer as a Number.
func IntegerValue[T Integers](v T) Number {
	return Number{Kind: IntegerKind, Int: int64(v)}
}

// FloatValue wraps a float as a Number.
func FloatValue[T Floats](v T) Number {
	return Number{Kind: FloatKind, Float: float64(v)}
}

// Named returns a copy of n carrying name.
func (n Number) Named(name string) Number {
	n.Name = name
	return n
}

// HasName reports whether n is named.
func (n Number) HasName() bool {
	return n.Name != ""
}

// Literal is the canonical decimal form of n: base 10 for integers, the
// shortest round-trip decimal without exponent for floats.
func (n Number) Literal() string {
	if n.Kind == IntegerKind {
		return strconv.FormatInt(n.Int, 10)
	}
	switch {
	case math.IsNaN(n.Float):
		return "NaN"
	case math.IsInf(n.Float, 1):
		return "inf"
	case math.IsInf(n.Float, -1):
		return "-inf"
	}
	return strconv.FormatFloat(n.Float, 'f', -1, 64)
}
