package goflat_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	goflat "github.com/reoring/goflat"
)

type person struct {
	FName string
	LName string
	Phone string
	Age   *int
}

var parseInt = goflat.TransformFunc(func(v any) (any, error) {
	s, _ := v.(string)
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
})

var oneDecimal = goflat.TransformFunc(func(v any) (any, error) {
	switch n := v.(type) {
	case int:
		return fmt.Sprintf("%.1f", float64(n)), nil
	case float64:
		return fmt.Sprintf("%.1f", n), nil
	case string:
		return n, nil
	}
	return nil, fmt.Errorf("cannot format %T", v)
})

// keepPhone only fills the phone when the target has none.
func keepPhone(target any, rec *goflat.Record) error {
	p, ok := target.(*person)
	if !ok {
		return fmt.Errorf("unexpected target %T", target)
	}
	if p.Phone != "" {
		return nil
	}
	v, err := goflat.ValueAs[string](rec, "phone")
	if err != nil {
		return err
	}
	p.Phone = v
	return nil
}

func newPersonSchema(t *testing.T, opts ...goflat.SchemaOption) *goflat.Schema {
	t.Helper()
	s := goflat.NewSchema(append([]goflat.SchemaOption{goflat.Named("person")}, opts...)...)
	_, err := s.AddField("f_name", goflat.Width(10))
	require.NoError(t, err)
	_, err = s.AddField("l_name", goflat.Width(10), goflat.Aggressive())
	require.NoError(t, err)
	_, err = s.AddField("phone", goflat.Width(10), goflat.WithMerge(keepPhone))
	require.NoError(t, err)
	_, err = s.AddField("age", goflat.Width(4), goflat.Filter(parseInt), goflat.Formatter(oneDecimal))
	require.NoError(t, err)
	_, err = s.AddPad(goflat.AutoName, goflat.Width(3))
	require.NoError(t, err)
	_, err = s.AddPad("ignore", goflat.Width(3))
	require.NoError(t, err)
	return s
}

// personLine builds a 40 character line from its segments.
func personLine(first, last, phone, age, pad, ignore string) string {
	fit := func(s string, n int) string { return fmt.Sprintf("%-*s", n, s) }
	return fit(first, 10) + fit(last, 10) + fit(phone, 10) + fit(age, 4) + fit(pad, 3) + fit(ignore, 3)
}
