package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	goflat "github.com/reoring/goflat"
)

// Int parses a segment into an int. Surrounding spaces and leading zeros are
// accepted; a blank segment yields nil.
func Int() goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		return n, nil
	})
}

// Float parses a segment into a float64; a blank segment yields nil.
func Float() goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return strconv.ParseFloat(s, 64)
	})
}

// ImpliedDecimal parses digits that carry an implied decimal point, the
// usual money encoding of fixed-width files: "000123" with 2 places is 1.23.
func ImpliedDecimal(places int) goflat.Transform {
	scale := math.Pow10(places)
	parse := Int()
	return goflat.TransformFunc(func(v any) (any, error) {
		n, err := parse.Transform(v)
		if err != nil || n == nil {
			return n, err
		}
		return float64(n.(int)) / scale, nil
	})
}

// Fixed is a formatter that renders numbers with the given number of
// decimal places. Strings pass through; nil renders blank.
func Fixed(places int) goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		if f, ok := toFloat(v); ok {
			return strconv.FormatFloat(f, 'f', places, 64), nil
		}
		switch v.(type) {
		case nil:
			return "", nil
		case string:
			return v, nil
		}
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedType, v)
	})
}

// Digits is a formatter that renders numbers without a decimal point after
// scaling by 10^places, the inverse of ImpliedDecimal.
func Digits(places int) goflat.Transform {
	scale := math.Pow10(places)
	return goflat.TransformFunc(func(v any) (any, error) {
		if v == nil {
			return "", nil
		}
		f, ok := toFloat(v)
		if !ok {
			return nil, fmt.Errorf("%w: %T", ErrUnexpectedType, v)
		}
		return strconv.FormatInt(int64(math.Round(f*scale)), 10), nil
	})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
