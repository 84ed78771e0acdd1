package dsl

import (
	goflat "github.com/reoring/goflat"
)

// Builder accumulates declarations for a goflat.Schema.
type Builder struct {
	opts    []goflat.SchemaOption
	decls   []decl
	layouts []layoutDecl
	setup   []func(*goflat.Schema)
}

type decl struct {
	name    string
	pad     bool
	options []goflat.FieldOption
}

type layoutDecl struct {
	name  string
	rows  int
	build func(*Builder)
}

// FieldStep configures the field declared last and continues the chain.
type FieldStep struct {
	b *Builder
	i int
}

// Record starts a builder for a schema named name.
func Record(name string, opts ...goflat.SchemaOption) *Builder {
	return &Builder{opts: append([]goflat.SchemaOption{goflat.Named(name)}, opts...)}
}

// Field declares a value field of the given width.
func (b *Builder) Field(name string, width int) *FieldStep {
	b.decls = append(b.decls, decl{name: name, options: []goflat.FieldOption{goflat.Width(width)}})
	return &FieldStep{b: b, i: len(b.decls) - 1}
}

// Pad declares an auto-named padding field.
func (b *Builder) Pad(width int) *Builder {
	b.decls = append(b.decls, decl{pad: true, options: []goflat.FieldOption{goflat.Width(width)}})
	return b
}

// Ignore declares a named padding field.
func (b *Builder) Ignore(name string, width int) *Builder {
	b.decls = append(b.decls, decl{name: name, pad: true, options: []goflat.FieldOption{goflat.Width(width)}})
	return b
}

// Register adds a named transform to the schema's registry.
func (b *Builder) Register(name string, t goflat.Transform) *Builder {
	b.setup = append(b.setup, func(s *goflat.Schema) { s.Register(name, t) })
	return b
}

// Layout declares a sub-record layout built by fn. rows may be 0.
func (b *Builder) Layout(name string, rows int, fn func(*Builder)) *Builder {
	b.layouts = append(b.layouts, layoutDecl{name: name, rows: rows, build: fn})
	return b
}

// Build creates the schema, returning the first declaration error.
func (b *Builder) Build() (*goflat.Schema, error) {
	s := goflat.NewSchema(b.opts...)
	for _, fn := range b.setup {
		fn(s)
	}
	if err := b.declare(s); err != nil {
		return nil, err
	}
	for _, l := range b.layouts {
		fn := l.build
		_, err := s.AddLayout(l.name, func(child *goflat.Schema) error {
			if fn == nil {
				return nil
			}
			nb := &Builder{}
			fn(nb)
			for _, setup := range nb.setup {
				setup(child)
			}
			return nb.declare(child)
		}, goflat.Rows(l.rows))
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustBuild is Build that panics on error.
func (b *Builder) MustBuild() *goflat.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *Builder) declare(s *goflat.Schema) error {
	for _, d := range b.decls {
		var err error
		if d.pad {
			_, err = s.AddPad(d.name, d.options...)
		} else {
			_, err = s.AddField(d.name, d.options...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (f *FieldStep) with(o goflat.FieldOption) *FieldStep {
	d := &f.b.decls[f.i]
	d.options = append(d.options, o)
	return f
}

// Filter appends parse-side transforms.
func (f *FieldStep) Filter(ts ...goflat.Transform) *FieldStep { return f.with(goflat.Filter(ts...)) }

// Format appends serialize-side transforms.
func (f *FieldStep) Format(ts ...goflat.Transform) *FieldStep {
	return f.with(goflat.Formatter(ts...))
}

// Aggressive makes merge overwrite the target unconditionally.
func (f *FieldStep) Aggressive() *FieldStep { return f.with(goflat.Aggressive()) }

// Merge installs a custom merge function.
func (f *FieldStep) Merge(fn goflat.MergeFunc) *FieldStep { return f.with(goflat.WithMerge(fn)) }

func (f *FieldStep) Field(name string, width int) *FieldStep { return f.b.Field(name, width) }
func (f *FieldStep) Pad(width int) *Builder                  { return f.b.Pad(width) }
func (f *FieldStep) Ignore(name string, width int) *Builder  { return f.b.Ignore(name, width) }
func (f *FieldStep) Layout(name string, rows int, fn func(*Builder)) *Builder {
	return f.b.Layout(name, rows, fn)
}
func (f *FieldStep) Build() (*goflat.Schema, error) { return f.b.Build() }
func (f *FieldStep) MustBuild() *goflat.Schema      { return f.b.MustBuild() }
