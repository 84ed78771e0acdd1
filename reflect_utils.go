package goflat

import (
	"math"
	"reflect"
	"strings"
)

// ResolveStructKey applies the repository-wide rule to resolve a struct
// field's external key used by Accessor and merge.
// Priority: flat:"name" > field name; "-" disables the field.
func ResolveStructKey(sf reflect.StructField) string {
	if ft := sf.Tag.Get("flat"); ft != "" {
		if i := strings.IndexByte(ft, ','); i >= 0 {
			ft = ft[:i]
		}
		if ft = strings.TrimSpace(ft); ft != "" {
			return ft
		}
	}
	return sf.Name
}

// normalizeKey folds case and drops underscores so that "f_name" and
// "FName" resolve to the same key.
func normalizeKey(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", ""))
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// safeConvertible reports conversions that keep the value's meaning.
// reflect allows int -> string (producing a rune), which is excluded.
func safeConvertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}
	fk, tk := from.Kind(), to.Kind()
	switch {
	case isNumericKind(fk) && isNumericKind(tk):
		return true
	case fk == reflect.String && tk == reflect.String:
		return true
	case fk == reflect.Bool && tk == reflect.Bool:
		return true
	}
	return false
}

// assignValue stores val into fv, allocating pointers and applying safe
// conversions. It reports whether the assignment happened.
func assignValue(fv reflect.Value, val any) bool {
	if val == nil {
		fv.Set(reflect.Zero(fv.Type()))
		return true
	}
	vv := reflect.ValueOf(val)
	if vv.Type().AssignableTo(fv.Type()) {
		fv.Set(vv)
		return true
	}
	if vv.Kind() == reflect.Pointer {
		if vv.IsNil() {
			fv.Set(reflect.Zero(fv.Type()))
			return true
		}
		return assignValue(fv, vv.Elem().Interface())
	}
	if fv.Kind() == reflect.Pointer {
		p := reflect.New(fv.Type().Elem())
		if !assignValue(p.Elem(), val) {
			return false
		}
		fv.Set(p)
		return true
	}
	if safeConvertible(vv.Type(), fv.Type()) {
		cv, ok := convertExact(vv, fv.Type())
		if !ok {
			return false
		}
		fv.Set(cv)
		return true
	}
	return false
}

// convertExact converts vv to t and rejects numeric conversions that
// truncate, wrap or overflow. Float to float only checks range.
func convertExact(vv reflect.Value, t reflect.Type) (reflect.Value, bool) {
	fk, tk := vv.Kind(), t.Kind()
	if !isNumericKind(fk) || !isNumericKind(tk) {
		return vv.Convert(t), true
	}
	if isFloatKind(fk) {
		f := vv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			if !isFloatKind(tk) {
				return reflect.Value{}, false
			}
			return vv.Convert(t), true
		}
		if isFloatKind(tk) {
			if reflect.Zero(t).OverflowFloat(f) {
				return reflect.Value{}, false
			}
			return vv.Convert(t), true
		}
	}
	cv := vv.Convert(t)
	if cv.Convert(vv.Type()).Interface() != vv.Interface() {
		return reflect.Value{}, false
	}
	// int64 -> uint64 -> int64 round-trips a negative value
	if isSignedKind(fk) && isUnsignedKind(tk) && vv.Int() < 0 {
		return reflect.Value{}, false
	}
	if isUnsignedKind(fk) && isSignedKind(tk) && cv.Int() < 0 {
		return reflect.Value{}, false
	}
	return cv, true
}

func isFloatKind(k reflect.Kind) bool { return k == reflect.Float32 || k == reflect.Float64 }

func isSignedKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsignedKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

// isEmpty reports whether a target value counts as unset: nil, a nil
// pointer or interface, an empty slice or map, or the zero value of a
// non-pointer type. A non-nil pointer is set even when it points at zero.
func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Pointer:
		return rv.IsNil()
	case reflect.Slice, reflect.Map:
		return rv.Len() == 0
	}
	return rv.IsZero()
}
