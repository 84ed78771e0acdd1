package goflat

import "fmt"

// Layout is a named record shape inside a multi-shape file. It owns a Schema
// built independently from its parent, sharing the parent's Registry and
// PadNamer.
type Layout struct {
	name   string
	rows   int
	parent *Schema
	schema *Schema
}

// NewLayout builds a layout against parent. Both parent and build are
// required.
func NewLayout(parent *Schema, name string, build func(*Schema) error, opts ...LayoutOption) (*Layout, error) {
	switch {
	case parent == nil:
		return nil, &ConstructionError{Layout: name, Reason: "layout requires a parent schema"}
	case build == nil:
		return nil, &ConstructionError{Layout: name, Reason: "layout requires a field declaring function"}
	case name == "":
		return nil, &ConstructionError{Reason: "layout name is empty"}
	}
	l := &Layout{name: name, parent: parent}
	for _, o := range opts {
		o(l)
	}
	if l.rows < 0 {
		return nil, &ConstructionError{Layout: name, Reason: "rows must not be negative"}
	}
	child := NewSchema(Named(name), WithRegistry(parent.registry), WithPadNamer(parent.padNamer))
	child.raw = parent.raw
	child.parent = parent
	if err := build(child); err != nil {
		return nil, fmt.Errorf("goflat: layout %s: %w", name, err)
	}
	l.schema = child
	return l, nil
}

func (l *Layout) Name() string { return l.name }

// Rows is the informational number of lines the layout occupies; 0 means
// unbounded.
func (l *Layout) Rows() int { return l.rows }

func (l *Layout) Parent() *Schema { return l.parent }
func (l *Layout) Schema() *Schema { return l.schema }

// Codec returns the codec of the layout's schema.
func (l *Layout) Codec() *Codec { return l.schema.Codec() }
