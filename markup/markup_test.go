package markup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/construct/markup"
)

func TestNewNode_Validation(t *testing.T) {
	t.Parallel()

	// 1. Empty name is the one rejected input.
	_, err := markup.NewNode("", "text")
	require.ErrorIs(t, err, markup.ErrEmptyName)

	// 2. Empty text is legal content.
	n, err := markup.NewNode("p", "")
	require.NoError(t, err)
	require.Equal(t, "p", n.Name)
	require.Empty(t, n.Children)
}

func TestRender_EmptyRoot(t *testing.T) {
	t.Parallel()

	// No text, no children: open and close tags on two lines, same indent.
	b := markup.New("note")
	require.Equal(t, "<note>\n</note>\n", b.String())
}

func TestRender_ChildrenAndText(t *testing.T) {
	t.Parallel()

	b := markup.New("ul").
		AddChild("li", "hello").
		AddChild("li", "world")

	want := "<ul>\n" +
		"  <li>\n" +
		"    hello\n" +
		"  </li>\n" +
		"  <li>\n" +
		"    world\n" +
		"  </li>\n" +
		"</ul>\n"
	require.Equal(t, want, b.String())
}

func TestRender_BlankTextOmitted(t *testing.T) {
	t.Parallel()

	// Whitespace-only text renders no text line.
	b := markup.New("p").AddChild("span", "   ")
	require.Equal(t, "<p>\n  <span>\n  </span>\n</p>\n", b.String())
}

func TestRender_IndentGrowsPerDepth(t *testing.T) {
	t.Parallel()

	// A pre-built subtree nests one level deeper than the root's children.
	inner, err := markup.NewNode("em", "deep")
	require.NoError(t, err)
	outer := &markup.Node{Name: "li", Children: []*markup.Node{inner}}

	b := markup.New("ul").AddChildNode(outer)
	want := "<ul>\n" +
		"  <li>\n" +
		"    <em>\n" +
		"      deep\n" +
		"    </em>\n" +
		"  </li>\n" +
		"</ul>\n"
	require.Equal(t, want, b.String())
}

func TestRender_Pure(t *testing.T) {
	t.Parallel()

	// Rendering twice, with a mutation in between, never corrupts state.
	b := markup.New("ol").AddChild("li", "one")
	first := b.String()
	require.Equal(t, first, b.String())

	b.AddChild("li", "two")
	require.NotEqual(t, first, b.String())
}

func TestReset_RestoresEmptyRoot(t *testing.T) {
	t.Parallel()

	b := markup.New("ul").AddChild("li", "gone")
	b.Reset()
	require.Equal(t, "<ul>\n</ul>\n", b.String())

	// The builder stays usable after Reset.
	b.AddChild("li", "back")
	require.Contains(t, b.String(), "back")
}

func TestWithIndent_Override(t *testing.T) {
	t.Parallel()

	b := markup.New("ul", markup.WithIndent(4)).AddChild("li", "x")
	require.Equal(t, "<ul>\n    <li>\n        x\n    </li>\n</ul>\n", b.String())
}

func TestWithIndent_PanicsOnNonPositive(t *testing.T) {
	t.Parallel()

	// Option constructors fail fast on meaningless values.
	require.Panics(t, func() { markup.WithIndent(0) })
}

func TestAddChildNode_NilIsNoop(t *testing.T) {
	t.Parallel()

	b := markup.New("ul").AddChildNode(nil)
	require.Equal(t, "<ul>\n</ul>\n", b.String())
}
