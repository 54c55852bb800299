package textblock

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantMulti bool
		wantLines []string
	}{
		{"plain line", "port = 80", false, []string{"port = 80"}},
		{"empty string", "", false, []string{""}},
		{"two lines", "a\nb", true, []string{"a", "b"}},
		{"trailing newline", "a\n", true, []string{"a"}},
		{"crlf", "a\r\nb\r\n", true, []string{"a", "b"}},
		{"blank middle", "a\n\nb", true, []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Line(tt.input)
			assert.Equal(t, tt.wantMulti, b.IsMulti())
			assert.Equal(t, tt.wantLines, b.Lines())
		})
	}
}

func TestLineRoundTrip(t *testing.T) {
	for _, s := range []string{"", "x", "key = value", "  padded  ", "# comment"} {
		assert.Equal(t, s, Line(s).String())
	}
}

func TestConstructors(t *testing.T) {
	assert.False(t, Empty().IsMulti())
	assert.Equal(t, "", Empty().String())

	assert.True(t, EmptyLines(0).IsMulti())
	assert.Equal(t, 0, EmptyLines(0).Len())
	assert.Equal(t, "", EmptyLines(0).String())
	assert.Equal(t, []string{"", "", ""}, EmptyLines(3).Lines())
	assert.Equal(t, "\n\n", EmptyLines(3).String())

	assert.True(t, Lines().IsMulti())
	assert.Equal(t, "", Lines().String())

	var zero Block
	assert.True(t, zero.IsMulti())
	assert.Equal(t, "", zero.String())
}

func TestLinesReturnsCopy(t *testing.T) {
	b := Lines("a", "b")
	got := b.Lines()
	got[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, b.Lines())
}

func TestMap(t *testing.T) {
	upper := strings.ToUpper

	single := Line("abc").Map(upper)
	assert.False(t, single.IsMulti())
	assert.Equal(t, "ABC", single.String())

	multi := Lines("a", "b").Map(upper)
	assert.True(t, multi.IsMulti())
	assert.Equal(t, []string{"A", "B"}, multi.Lines())

	oneLineStack := Lines("a").Map(upper)
	assert.True(t, oneLineStack.IsMulti(), "a stack keeps its shape")
}

func TestIndent(t *testing.T) {
	t.Run("zero levels is a no-op", func(t *testing.T) {
		b := Lines("a", "b")
		assert.Equal(t, b, b.Indent(0))
	})

	t.Run("prefixes every line", func(t *testing.T) {
		assert.Equal(t, []string{"\t\ta", "\t\tb"}, Lines("a", "b").Indent(2).Lines())
		assert.Equal(t, "\tx", Line("x").Indent(1).String())
	})

	t.Run("custom unit", func(t *testing.T) {
		assert.Equal(t, "    x", Line("x").IndentWith("  ", 2).String())
	})

	t.Run("composes additively", func(t *testing.T) {
		blocks := []Block{Line("x"), Lines("a", "", "b"), EmptyLines(2), Lines()}
		for _, b := range blocks {
			for m := 0; m < 3; m++ {
				for n := 0; n < 3; n++ {
					assert.Equal(t, b.Indent(m+n), b.Indent(m).Indent(n), "m=%d n=%d", m, n)
				}
			}
		}
	})
}

func TestMerge(t *testing.T) {
	t.Run("single lines become a stack", func(t *testing.T) {
		got := Line("a").Merge(Line("b"))
		assert.True(t, got.IsMulti())
		assert.Equal(t, []string{"a", "b"}, got.Lines())
	})

	t.Run("stacks concatenate", func(t *testing.T) {
		got := Lines("a", "b").Merge(Lines("c"))
		assert.Equal(t, "a\nb\nc", got.String())
	})

	t.Run("merging zero lines only changes the shape", func(t *testing.T) {
		got := Line("s").Merge(EmptyLines(0))
		assert.True(t, got.IsMulti())
		assert.Equal(t, Line("s").Lines(), got.Lines())
	})

	t.Run("blank lines are kept", func(t *testing.T) {
		got := Line("a").Merge(EmptyLines(2)).Merge(Line("b"))
		assert.Equal(t, "a\n\n\nb", got.String())
	})
}

func TestAttachRight(t *testing.T) {
	tests := []struct {
		name      string
		left      Block
		right     Block
		wantMulti bool
		wantLines []string
	}{
		{
			name:      "single single",
			left:      Line("a = 1"),
			right:     Line("# one"),
			wantLines: []string{"a = 1 # one"},
		},
		{
			name:      "single with empty stack",
			left:      Line("x"),
			right:     Lines(),
			wantLines: []string{"x"},
		},
		{
			name:      "single with one line stack",
			left:      Line("x"),
			right:     Lines("y"),
			wantLines: []string{"x y"},
		},
		{
			name:      "single with stack pads continuation",
			left:      Line("x"),
			right:     Lines("y", "z"),
			wantMulti: true,
			wantLines: []string{"x y", "  z"},
		},
		{
			name:      "single with longer stack",
			left:      Line("key = 10"),
			right:     Lines("# a", "# b", "# c"),
			wantMulti: true,
			wantLines: []string{"key = 10 # a", "         # b", "         # c"},
		},
		{
			name:      "empty stack with single",
			left:      Lines(),
			right:     Line("y"),
			wantLines: []string{"y"},
		},
		{
			name:      "one line stack with single",
			left:      Lines("x"),
			right:     Line("y"),
			wantLines: []string{"x y"},
		},
		{
			name:      "stack with single attaches to first line only",
			left:      Lines("# top", "value = 1"),
			right:     Line("# right"),
			wantMulti: true,
			wantLines: []string{"# top # right", "value = 1"},
		},
		{
			name:      "equal stacks",
			left:      Lines("a", "bb"),
			right:     Lines("1", "2"),
			wantMulti: true,
			wantLines: []string{"a 1", "bb 2"},
		},
		{
			name:      "one by one stacks collapse to a line",
			left:      Lines("a"),
			right:     Lines("1"),
			wantLines: []string{"a 1"},
		},
		{
			name:      "longer right stack is padded by widest left line",
			left:      Lines("a", "bbb"),
			right:     Lines("1", "2", "3", "4"),
			wantMulti: true,
			wantLines: []string{"a 1", "bbb 2", "    3", "    4"},
		},
		{
			name:      "longer left stack is not padded",
			left:      Lines("a", "bbb", "cc"),
			right:     Lines("1"),
			wantMulti: true,
			wantLines: []string{"a 1", "bbb", "cc"},
		},
		{
			name:      "longer left stack with two right lines",
			left:      Lines("a", "bbb", "cc"),
			right:     Lines("1", "2"),
			wantMulti: true,
			wantLines: []string{"a 1", "bbb 2", "cc"},
		},
		{
			name:      "both stacks empty",
			left:      Lines(),
			right:     Lines(),
			wantLines: []string{""},
		},
		{
			name:      "empty left stack",
			left:      Lines(),
			right:     Lines("1", "2"),
			wantMulti: true,
			wantLines: []string{"1", "2"},
		},
		{
			name:      "empty right stack",
			left:      Lines("a", "b"),
			right:     Lines(),
			wantMulti: true,
			wantLines: []string{"a", "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.left.AttachRight(tt.right)
			assert.Equal(t, tt.wantMulti, got.IsMulti())
			assert.Equal(t, tt.wantLines, got.Lines())
		})
	}
}

func TestAttachRightNotCommutative(t *testing.T) {
	pairs := [][2]Block{
		{Line("a"), Line("b")},
		{Line("x"), Lines("y", "z")},
		{Lines("a", "b"), Line("c")},
		{Lines("a", "bb"), Lines("1", "2", "3")},
	}
	for _, p := range pairs {
		assert.NotEqual(t, p[0].AttachRight(p[1]).Lines(), p[1].AttachRight(p[0]).Lines())
	}

	// Degenerate pairs where one side has no lines.
	assert.Equal(t, Lines().AttachRight(Lines("a")).Lines(), Lines("a").AttachRight(Lines()).Lines())
	assert.Equal(t, Lines().AttachRight(Lines()).Lines(), Lines().AttachRight(Lines()).Lines())
}

func TestAttachRightWideCharacters(t *testing.T) {
	got := Line("名前").AttachRight(Lines("# a", "# b"))
	assert.Equal(t, []string{"名前 # a", "     # b"}, got.Lines())
}

func TestAttachRightLeavesOperandsUntouched(t *testing.T) {
	left := Lines("a", "b")
	right := Lines("1", "2", "3")
	_ = left.AttachRight(right)
	_ = left.Merge(right)
	assert.Equal(t, []string{"a", "b"}, left.Lines())
	assert.Equal(t, []string{"1", "2", "3"}, right.Lines())
}
