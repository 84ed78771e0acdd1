package goflat

import (
	"sync"
	"sync/atomic"
)

// Schema is an ordered sequence of fixed-width fields. Declaration order is
// the character order of every line. A Schema is built once, sealed, and
// then shared read-only by its Codec, Records and Layouts.
type Schema struct {
	name     string
	fields   []*FieldSpec
	index    map[string]int
	width    int
	raw      bool
	registry *Registry
	padNamer PadNamer
	parent   *Schema

	layouts     []*Layout
	layoutIndex map[string]int

	sealed    atomic.Bool
	codecOnce sync.Once
	codec     *Codec
}

// NewSchema creates an empty schema with its own Registry and the
// process-wide pad namer.
func NewSchema(opts ...SchemaOption) *Schema {
	s := &Schema{
		index:       map[string]int{},
		layoutIndex: map[string]int{},
		registry:    NewRegistry(),
		padNamer:    DefaultPadNamer(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// AddField appends a field. The width defaults to DefaultWidth.
func (s *Schema) AddField(name string, opts ...FieldOption) (*FieldSpec, error) {
	if s.Sealed() {
		return nil, ErrSealed
	}
	if name == "" {
		return nil, &ConstructionError{Layout: s.layoutName(), Reason: "field name is empty"}
	}
	if _, dup := s.index[name]; dup {
		return nil, &DuplicateFieldError{Name: name}
	}
	f := &FieldSpec{name: name, width: DefaultWidth, owner: s}
	for _, o := range opts {
		o(f)
	}
	if f.width <= 0 {
		return nil, &ConstructionError{Layout: s.layoutName(), Reason: "field " + name + " must have a positive width"}
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, f)
	s.width += f.width
	return f, nil
}

// AddPad appends a padding field. Pass AutoName to have a unique name
// generated by the schema's PadNamer.
func (s *Schema) AddPad(name string, opts ...FieldOption) (*FieldSpec, error) {
	if name == AutoName {
		if s.Sealed() {
			return nil, ErrSealed
		}
		name = s.newPadName()
	}
	return s.AddField(name, append(opts, Padding())...)
}

func (s *Schema) newPadName() string {
	for {
		n := s.padNamer.NextPadName()
		if !s.HasField(n) {
			return n
		}
	}
}

// AddLayout declares a named sub-record layout whose fields are declared by
// build against a fresh Schema.
func (s *Schema) AddLayout(name string, build func(*Schema) error, opts ...LayoutOption) (*Layout, error) {
	if s.Sealed() {
		return nil, ErrSealed
	}
	if _, dup := s.layoutIndex[name]; dup {
		return nil, &DuplicateLayoutError{Name: name}
	}
	l, err := NewLayout(s, name, build, opts...)
	if err != nil {
		return nil, err
	}
	s.layoutIndex[name] = len(s.layouts)
	s.layouts = append(s.layouts, l)
	return l, nil
}

func (s *Schema) Name() string { return s.name }

// Width is the sum of all field widths.
func (s *Schema) Width() int { return s.width }

// Registry returns the registry Refs are resolved against.
func (s *Schema) Registry() *Registry { return s.registry }

// Register is shorthand for s.Registry().Register.
func (s *Schema) Register(name string, t Transform) { s.registry.Register(name, t) }

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []*FieldSpec { return append([]*FieldSpec(nil), s.fields...) }

// Field returns the field with the given name.
func (s *Schema) Field(name string) (*FieldSpec, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i], true
}

func (s *Schema) HasField(name string) bool {
	_, ok := s.index[name]
	return ok
}

// NonPaddingFields returns the addressable fields in declaration order.
func (s *Schema) NonPaddingFields() []*FieldSpec {
	out := make([]*FieldSpec, 0, len(s.fields))
	for _, f := range s.fields {
		if !f.padding {
			out = append(out, f)
		}
	}
	return out
}

// Offset returns the character range [start, end) the field occupies.
func (s *Schema) Offset(name string) (start, end int, ok bool) {
	i, ok := s.index[name]
	if !ok {
		return 0, 0, false
	}
	for _, f := range s.fields[:i] {
		start += f.width
	}
	return start, start + s.fields[i].width, true
}

// Layouts returns the declared layouts in declaration order.
func (s *Schema) Layouts() []*Layout { return append([]*Layout(nil), s.layouts...) }

// Layout returns the layout with the given name.
func (s *Schema) Layout(name string) (*Layout, bool) {
	i, ok := s.layoutIndex[name]
	if !ok {
		return nil, false
	}
	return s.layouts[i], true
}

// LayoutNames returns layout names in declaration order.
func (s *Schema) LayoutNames() []string {
	names := make([]string, len(s.layouts))
	for i, l := range s.layouts {
		names[i] = l.name
	}
	return names
}

// IsRaw reports whether segments reach the filter chain unstripped.
func (s *Schema) IsRaw() bool { return s.raw }

func (s *Schema) HasLayouts() bool { return len(s.layouts) > 0 }

// Seal freezes the schema and its layouts. Declaration calls made afterwards
// fail with ErrSealed.
func (s *Schema) Seal() {
	s.sealed.Store(true)
	for _, l := range s.layouts {
		l.schema.Seal()
	}
}

func (s *Schema) Sealed() bool { return s.sealed.Load() }

// Codec seals the schema and returns its codec.
func (s *Schema) Codec() *Codec {
	s.codecOnce.Do(func() {
		s.Seal()
		s.codec = newCodec(s)
	})
	return s.codec
}

func (s *Schema) layoutName() string {
	if s.parent != nil {
		return s.name
	}
	return ""
}
