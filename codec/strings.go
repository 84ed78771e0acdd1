package codec

import (
	"strings"
	"unicode/utf8"

	goflat "github.com/reoring/goflat"
)

func textFunc(fn func(string) string) goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		return fn(s), nil
	})
}

// Trim strips leading and trailing white space.
func Trim() goflat.Transform { return textFunc(strings.TrimSpace) }

// TrimLeft strips leading white space, for right-aligned segments.
func TrimLeft() goflat.Transform {
	return textFunc(func(s string) string { return strings.TrimLeft(s, " \t") })
}

func Upper() goflat.Transform { return textFunc(strings.ToUpper) }
func Lower() goflat.Transform { return textFunc(strings.ToLower) }

// BlankToNil turns an all-space value into nil so that merge treats it as
// unset.
func BlankToNil() goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(s) == "" {
			return nil, nil
		}
		return v, nil
	})
}

// RightAlign is a formatter that right-justifies the rendered value into
// width characters using fill. Values longer than width keep their
// rightmost characters.
func RightAlign(width int, fill rune) goflat.Transform {
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		n := utf8.RuneCountInString(s)
		switch {
		case n == width:
			return s, nil
		case n > width:
			r := []rune(s)
			return string(r[n-width:]), nil
		}
		return strings.Repeat(string(fill), width-n) + s, nil
	})
}

// ZeroPad is RightAlign with '0' as fill. A leading minus sign stays in
// front of the zeros.
func ZeroPad(width int) goflat.Transform {
	align := RightAlign(width, '0')
	return goflat.TransformFunc(func(v any) (any, error) {
		s, err := text(v)
		if err != nil {
			return nil, err
		}
		if strings.HasPrefix(s, "-") && width > 1 {
			out, err := RightAlign(width-1, '0').Transform(s[1:])
			if err != nil {
				return nil, err
			}
			return "-" + out.(string), nil
		}
		return align.Transform(s)
	})
}
