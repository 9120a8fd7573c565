// Package markup implements the classic fluent Builder over a tree of
// markup nodes: create a builder for a root element, chain AddChild calls,
// then render the whole tree as an indented, tag-bracketed string.
//
// The package offers the following key components:
//
//   - Node:        the tree primitive {Name, Text, Children}, append-only.
//   - NewNode:     validated two-argument constructor (name must be non-empty).
//   - Builder:     owns a root Node; AddChild/AddChildNode return the builder
//     itself so calls chain; String renders; Reset discards children.
//   - Option:      functional options resolved at New time (WithIndent).
//
// Guarantees:
//
//   - Rendering is pure: String never mutates the tree and is safe to call
//     repeatedly, before or after further AddChild calls.
//   - Indentation grows by exactly one unit (default two spaces) per nesting
//     level; an element with no text and no children renders as its open tag
//     and close tag on two lines at the same indent.
//   - Reset restores an empty root carrying the original name; the builder
//     remains usable.
//
// The builder performs no validation on AddChild inputs; only the standalone
// two-argument Node constructor rejects an empty name, via ErrEmptyName.
package markup
