// SPDX-License-Identifier: MIT
// Package: construct/markup
//
// builder.go — the fluent Builder plus its functional options.
//
// Contract (strict):
//   - Every mutating call returns the same *Builder so calls chain.
//   - Options are resolved once, at New time; the indent unit is then fixed
//     for the builder's lifetime.
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     builder methods never panic.

package markup

import "strings"

// defaultIndent is the number of spaces per nesting level.
const defaultIndent = 2

// config aggregates the knobs resolved from Options.
type config struct {
	// indent is the number of spaces per nesting level; always >= 1.
	indent int
}

// Option customizes a Builder at construction time.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*config)

// WithIndent overrides the indent unit (spaces per nesting level).
// Panics on n < 1 to surface programmer error early.
func WithIndent(n int) Option {
	if n < 1 {
		// Fail fast: option constructors validate and panic.
		panic("markup: WithIndent(<1)")
	}

	return func(c *config) {
		c.indent = n
	}
}

// newConfig resolves deterministic defaults, then applies opts in order
// (last wins). Complexity: O(len(opts)) time, O(1) space.
func newConfig(opts ...Option) config {
	cfg := config{indent: defaultIndent}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// Builder assembles a markup tree under a single root element and renders
// it on demand. The zero value is not usable; obtain builders via New.
type Builder struct {
	// root is owned exclusively by this builder until handed to a caller.
	root *Node
	// rootName is kept so Reset can restore an empty root.
	rootName string
	// indent is the resolved spaces-per-level unit.
	indent int
}

// New returns a Builder owning an empty root element named rootName.
// The root name is taken as-is; see NewNode for the validated constructor.
func New(rootName string, opts ...Option) *Builder {
	cfg := newConfig(opts...)

	return &Builder{
		root:     &Node{Name: rootName},
		rootName: rootName,
		indent:   cfg.indent,
	}
}

// AddChild appends a new leaf element to the root's children and returns
// the same builder, enabling chaining. Inputs are not validated.
// Complexity: amortized O(1).
func (b *Builder) AddChild(name, text string) *Builder {
	b.root.Children = append(b.root.Children, &Node{Name: name, Text: text})

	return b
}

// AddChildNode appends an already-built subtree to the root's children and
// returns the same builder. A nil node is a no-op.
func (b *Builder) AddChildNode(n *Node) *Builder {
	if n != nil {
		b.root.Children = append(b.root.Children, n)
	}

	return b
}

// String renders the accumulated tree: <root>, children one unit deeper,
// </root>. Pure; safe to call at any point.
// Complexity: O(tree size).
func (b *Builder) String() string {
	var sb strings.Builder
	b.root.render(&sb, 0, b.indent)

	return sb.String()
}

// Reset discards all accumulated children, restoring an empty root element
// with the original name. The indent unit is preserved.
func (b *Builder) Reset() {
	b.root = &Node{Name: b.rootName}
}
