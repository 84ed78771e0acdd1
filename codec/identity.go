// Package codec provides reusable filters and formatters for goflat fields,
// plus RegisterBuiltins to expose them by name to goflat.Ref and schema
// files.
package codec

import (
	"errors"
	"fmt"

	goflat "github.com/reoring/goflat"
)

// ErrUnexpectedType is wrapped by transforms that receive a value they cannot
// handle.
var ErrUnexpectedType = errors.New("codec: unexpected value type")

// Identity returns a transform that passes values through unchanged.
func Identity() goflat.Transform {
	return goflat.Func(func(v any) any { return v })
}

// Chain composes transforms left to right into a single transform. Refs are
// not resolved here; chain them on the field instead.
func Chain(ts ...goflat.Transform) goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		var err error
		for _, t := range ts {
			if v, err = t.Transform(v); err != nil {
				return nil, err
			}
		}
		return v, nil
	})
}

// text converts a segment or value to a string for transforms that operate
// on text. nil becomes ""; numbers use their default formatting.
func text(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case fmt.Stringer:
		return t.String(), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(t), nil
	}
	return "", fmt.Errorf("%w: %T", ErrUnexpectedType, v)
}
