package schemafile

import (
	"sort"

	goflat "github.com/reoring/goflat"
	"github.com/reoring/goflat/codec"
)

// Build creates a schema from f. Transform names resolve against reg; when
// reg is nil a fresh registry holding the codec builtins is used.
func (f *File) Build(reg *goflat.Registry) (*goflat.Schema, error) {
	if reg == nil {
		reg = goflat.NewRegistry()
		codec.RegisterBuiltins(reg)
	}
	opts := []goflat.SchemaOption{goflat.Named(f.Name), goflat.WithRegistry(reg)}
	if f.Raw {
		opts = append(opts, goflat.RawSegments())
	}
	s := goflat.NewSchema(opts...)
	if err := declare(s, f.Fields); err != nil {
		return nil, err
	}
	for _, l := range f.Layouts {
		fields := l.Fields
		if _, err := s.AddLayout(l.Name, func(child *goflat.Schema) error {
			return declare(child, fields)
		}, goflat.Rows(l.Rows)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func declare(s *goflat.Schema, fields []Field) error {
	for _, fd := range fields {
		opts := []goflat.FieldOption{goflat.Width(fd.Width)}
		if fd.Aggressive {
			opts = append(opts, goflat.Aggressive())
		}
		if len(fd.Filters) > 0 {
			opts = append(opts, goflat.Filter(refs(fd.Filters)...))
		}
		if len(fd.Formatters) > 0 {
			opts = append(opts, goflat.Formatter(refs(fd.Formatters)...))
		}
		var err error
		if fd.Pad {
			_, err = s.AddPad(fd.Name, opts...)
		} else {
			_, err = s.AddField(fd.Name, opts...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func refs(names []string) []goflat.Transform {
	out := make([]goflat.Transform, len(names))
	for i, n := range names {
		out[i] = goflat.Ref(n)
	}
	return out
}

// Unresolved lists the transform names used by f that reg does not know,
// sorted and without duplicates.
func (f *File) Unresolved(reg *goflat.Registry) []string {
	seen := map[string]struct{}{}
	check := func(fields []Field) {
		for _, fd := range fields {
			for _, n := range append(append([]string(nil), fd.Filters...), fd.Formatters...) {
				if !reg.Has(n) {
					seen[n] = struct{}{}
				}
			}
		}
	}
	check(f.Fields)
	for _, l := range f.Layouts {
		check(l.Fields)
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// FromSchema describes s as a File. Only named (Ref) transforms can be
// expressed; inline transforms are omitted.
func FromSchema(s *goflat.Schema) *File {
	f := &File{Version: CurrentVersion, Name: s.Name(), Raw: s.IsRaw(), Fields: describe(s)}
	for _, l := range s.Layouts() {
		f.Layouts = append(f.Layouts, Layout{Name: l.Name(), Rows: l.Rows(), Fields: describe(l.Schema())})
	}
	return f
}

func describe(s *goflat.Schema) []Field {
	var out []Field
	for _, fs := range s.Fields() {
		out = append(out, Field{
			Name:       fs.Name(),
			Width:      fs.Width(),
			Pad:        fs.IsPadding(),
			Aggressive: fs.IsAggressive(),
			Filters:    refNames(fs.Filters()),
			Formatters: refNames(fs.Formatters()),
		})
	}
	return out
}

func refNames(ts []goflat.Transform) []string {
	var out []string
	for _, t := range ts {
		if r, ok := t.(goflat.Ref); ok {
			out = append(out, string(r))
		}
	}
	return out
}
