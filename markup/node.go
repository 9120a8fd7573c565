// SPDX-License-Identifier: MIT
// Package: construct/markup
//
// node.go — the Node tree primitive, its validated constructor, and the
// recursive renderer shared by Node.String and Builder.String.
//
// Design contract (strict):
//   - Nodes are append-only: children are added, never removed or reordered.
//   - A Node built via NewNode always carries a non-empty Name.
//   - Rendering walks the tree depth-first and is free of side effects.

package markup

import (
	"errors"
	"strings"
)

// ErrEmptyName indicates that the two-argument Node constructor received an
// empty name. A nameless element cannot be rendered as <name>...</name>.
// Usage: if errors.Is(err, ErrEmptyName) { /* reject the element */ }.
var ErrEmptyName = errors.New("markup: node name is empty")

// Node is a single element in the markup tree.
//
// Name is the tag rendered as <Name> and </Name>.
// Text, when non-blank, renders as one line indented under the open tag.
// Children render recursively, one indent unit deeper than their parent.
type Node struct {
	// Name is the element tag. Non-empty for nodes built via NewNode.
	Name string

	// Text is the optional inline text of this element.
	Text string

	// Children holds sub-elements in insertion order.
	Children []*Node
}

// NewNode builds a leaf Node from a name and its inline text.
// The name must be non-empty; the text may be anything, including "".
//
// Errors:
//   - ErrEmptyName if name == "".
//
// Complexity: O(1) time, O(1) space.
func NewNode(name, text string) (*Node, error) {
	// Reject a nameless element early; everything else is legal content.
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Node{Name: name, Text: text}, nil
}

// String renders the subtree rooted at n with the default indent unit.
// Complexity: O(size of subtree) time and output space.
func (n *Node) String() string {
	var sb strings.Builder
	n.render(&sb, 0, defaultIndent)

	return sb.String()
}

// render writes the subtree rooted at n into sb.
// depth is the nesting level of n; unit is the number of spaces per level.
func (n *Node) render(sb *strings.Builder, depth, unit int) {
	// Open tag at this node's depth.
	pad := strings.Repeat(" ", unit*depth)
	sb.WriteString(pad)
	sb.WriteByte('<')
	sb.WriteString(n.Name)
	sb.WriteString(">\n")

	// Inline text sits one level deeper; blank text renders nothing.
	if strings.TrimSpace(n.Text) != "" {
		sb.WriteString(strings.Repeat(" ", unit*(depth+1)))
		sb.WriteString(n.Text)
		sb.WriteByte('\n')
	}

	// Children follow the text, each one level deeper.
	for _, child := range n.Children {
		child.render(sb, depth+1, unit)
	}

	// Close tag mirrors the open tag's indent.
	sb.WriteString(pad)
	sb.WriteString("</")
	sb.WriteString(n.Name)
	sb.WriteString(">\n")
}
