package goflat

import (
	"fmt"
	"reflect"
)

// Record is one parsed (or constructed) line: a mapping from each
// non-padding field of its schema to a value. Its set of names is fixed at
// creation; only values change. A Record is not safe for concurrent
// mutation.
type Record struct {
	schema *Schema
	values map[string]any
	line   int
}

// NewRecord creates a record for s, sealing s. Each non-padding field is
// seeded from the prototype's matching accessor when one exists, otherwise
// with an empty string. prototype may be nil.
func NewRecord(s *Schema, prototype any) (*Record, error) {
	s.Seal()
	var acc Accessor
	if prototype != nil {
		a, err := AccessorFor(prototype)
		if err != nil {
			return nil, err
		}
		acc = a
	}
	values := make(map[string]any, len(s.fields))
	for _, f := range s.fields {
		if f.padding {
			continue
		}
		var v any = ""
		if acc != nil {
			if pv, ok := acc.Lookup(f.name); ok {
				v = pv
			}
		}
		values[f.name] = v
	}
	return &Record{schema: s, values: values, line: NoLine}, nil
}

func (r *Record) Schema() *Schema { return r.schema }

// LineNumber is the 1-based source line, or NoLine.
func (r *Record) LineNumber() int { return r.line }

// Get returns the value of a non-padding field.
func (r *Record) Get(name string) (any, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, &UnknownFieldError{Name: name}
	}
	return v, nil
}

// Set replaces the value of a non-padding field. Values are stored as given:
// they must be of a shape the field's formatters accept.
func (r *Record) Set(name string, v any) error {
	if _, ok := r.values[name]; !ok {
		return &UnknownFieldError{Name: name}
	}
	r.values[name] = v
	return nil
}

// Has reports whether name is addressable on this record.
func (r *Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Names returns the addressable field names in declaration order.
func (r *Record) Names() []string {
	names := make([]string, 0, len(r.values))
	for _, f := range r.schema.fields {
		if _, ok := r.values[f.name]; ok {
			names = append(names, f.name)
		}
	}
	return names
}

// Values returns a copy of the field values.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Encode serializes the record with its schema's codec.
func (r *Record) Encode() (string, error) { return r.schema.Codec().Serialize(r) }

// MergeInto applies the record onto target; see Merge.
func (r *Record) MergeInto(target any) error { return Merge(r, target) }

// ValueAs returns the value of name as T.
func ValueAs[T any](r *Record, name string) (T, error) {
	var zero T
	v, err := r.Get(name)
	if err != nil {
		return zero, err
	}
	tv, ok := v.(T)
	if !ok {
		return zero, &TargetTypeError{
			Field: name,
			Want:  reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:   fmt.Sprintf("%T", v),
		}
	}
	return tv, nil
}
