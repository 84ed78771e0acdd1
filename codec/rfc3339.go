package codec

import (
	"fmt"
	"strings"
	"time"

	goflat "github.com/reoring/goflat"
)

// Common fixed-width date layouts.
const (
	LayoutYYYYMMDD = "20060102"
	LayoutYYMMDD   = "060102"
)

// Date parses a segment with the given time layout. A blank segment yields
// nil.
func Date(layout string) goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return time.Parse(layout, s)
	})
}

// FormatDate is a formatter that renders time.Time with layout. nil and
// the zero time render blank.
func FormatDate(layout string) goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		switch t := v.(type) {
		case nil:
			return "", nil
		case string:
			return t, nil
		case time.Time:
			if t.IsZero() {
				return "", nil
			}
			return t.Format(layout), nil
		case *time.Time:
			if t == nil || t.IsZero() {
				return "", nil
			}
			return t.Format(layout), nil
		}
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedType, v)
	})
}

// TimeRFC3339 parses RFC3339 timestamps, accepting fractional seconds.
func TimeRFC3339() goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		return parseRFC3339(s)
	})
}

// FormatRFC3339 renders time.Time in canonical UTC RFC3339.
func FormatRFC3339() goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		switch t := v.(type) {
		case nil:
			return "", nil
		case time.Time:
			return formatRFC3339Canonical(t), nil
		}
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedType, v)
	})
}

func parseRFC3339(s string) (time.Time, error) {
	// Accept RFC3339Nano (trailing zeros optional)
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

func formatRFC3339Canonical(t time.Time) string {
	// Normalize to UTC and format using RFC3339Nano (Go trims trailing zeros)
	return t.UTC().Format(time.RFC3339Nano)
}
