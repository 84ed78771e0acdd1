package goflat

import (
	"errors"
	"fmt"
	"reflect"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ErrUnsupportedTarget is returned when no Accessor can be derived for a
// prototype or merge target.
var ErrUnsupportedTarget = errors.New("goflat: unsupported target")

// Accessor is the explicit get/set capability used to seed records from a
// prototype and to merge records into a target.
type Accessor interface {
	// Lookup returns the current value of name and whether the target has it.
	Lookup(name string) (any, bool)
	// Settable reports whether name can be assigned.
	Settable(name string) bool
	// Assign stores v under name.
	Assign(name string, v any) error
}

// AccessorFor derives an Accessor for v:
//   - an Accessor is used as is
//   - map[string]any is open: every key is gettable and settable
//   - a pointer to a struct is read and written through reflection
//   - a struct value is read-only
func AccessorFor(v any) (Accessor, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedTarget)
	case Accessor:
		return t, nil
	case map[string]any:
		return MapAccessor(t), nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct:
		return &structAccessor{v: rv.Elem(), plan: planFor(rv.Elem().Type()), writable: true}, nil
	case rv.Kind() == reflect.Struct:
		return &structAccessor{v: rv, plan: planFor(rv.Type())}, nil
	}
	return nil, fmt.Errorf("%w: %T", ErrUnsupportedTarget, v)
}

// MapAccessor exposes a map as an open Accessor.
type MapAccessor map[string]any

func (m MapAccessor) Lookup(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapAccessor) Settable(string) bool { return m != nil }

func (m MapAccessor) Assign(name string, v any) error {
	m[name] = v
	return nil
}

// structPlan maps external keys to struct field indexes for one type.
type structPlan struct {
	exact map[string]int
	norm  map[string]int
}

func (p *structPlan) index(name string) (int, bool) {
	if i, ok := p.exact[name]; ok {
		return i, true
	}
	i, ok := p.norm[normalizeKey(name)]
	return i, ok
}

const planCacheSize = 256

var planCache = func() *lru.Cache[reflect.Type, *structPlan] {
	c, err := lru.New[reflect.Type, *structPlan](planCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}()

func planFor(t reflect.Type) *structPlan {
	if p, ok := planCache.Get(t); ok {
		return p
	}
	p := &structPlan{exact: map[string]int{}, norm: map[string]int{}}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := ResolveStructKey(sf)
		if key == "-" {
			continue
		}
		if _, dup := p.exact[key]; !dup {
			p.exact[key] = i
		}
		if nk := normalizeKey(key); nk != "" {
			if _, dup := p.norm[nk]; !dup {
				p.norm[nk] = i
			}
		}
	}
	planCache.Add(t, p)
	return p
}

type structAccessor struct {
	v        reflect.Value
	plan     *structPlan
	writable bool
}

func (a *structAccessor) Lookup(name string) (any, bool) {
	i, ok := a.plan.index(name)
	if !ok {
		return nil, false
	}
	fv := a.v.Field(i)
	if fv.Kind() == reflect.Pointer {
		if fv.IsNil() {
			return nil, true
		}
		return fv.Elem().Interface(), true
	}
	return fv.Interface(), true
}

// current returns the field as stored, without following pointers.
func (a *structAccessor) current(name string) (any, bool) {
	i, ok := a.plan.index(name)
	if !ok {
		return nil, false
	}
	return a.v.Field(i).Interface(), true
}

func (a *structAccessor) Settable(name string) bool {
	if !a.writable {
		return false
	}
	i, ok := a.plan.index(name)
	return ok && a.v.Field(i).CanSet()
}

func (a *structAccessor) Assign(name string, v any) error {
	i, ok := a.plan.index(name)
	if !ok || !a.writable {
		return &UnknownFieldError{Name: name}
	}
	fv := a.v.Field(i)
	if !assignValue(fv, v) {
		return &TargetTypeError{Field: name, Want: fv.Type().String(), Got: fmt.Sprintf("%T", v)}
	}
	return nil
}
