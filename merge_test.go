package goflat_test

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goflat "github.com/reoring/goflat"
)

func parsePerson(t *testing.T, line string) *goflat.Record {
	t.Helper()
	rec, err := newPersonSchema(t).Codec().ParseAt(line, 1)
	require.NoError(t, err)
	return rec
}

func TestMerge_CustomMergeKeepsExistingPhone(t *testing.T) {
	rec := parsePerson(t, personLine("Has", "Phone", "1111111111", "6", "", "xxx"))
	target := &person{Phone: "5555555555"}

	require.NoError(t, rec.MergeInto(target))
	assert.Equal(t, "5555555555", target.Phone, spew.Sdump(target))
	assert.Equal(t, "Has", target.FName)
	require.NotNil(t, target.Age)
	assert.Equal(t, 6, *target.Age)
}

func TestMerge_CustomMergeFillsEmptyPhone(t *testing.T) {
	rec := parsePerson(t, personLine("Has", "Phone", "1111111111", "6", "", "xxx"))
	target := &person{}
	require.NoError(t, goflat.Merge(rec, target))
	assert.Equal(t, "1111111111", target.Phone)
}

func TestMerge_AggressiveOverwrites(t *testing.T) {
	rec := parsePerson(t, personLine("Captain", "Stubing", "", "4", "", "xxx"))

	target := &person{FName: "Merrill", LName: "Tanner"}
	require.NoError(t, goflat.Merge(rec, target))
	// l_name is aggressive, f_name is only set when unset
	assert.Equal(t, "Stubing", target.LName)
	assert.Equal(t, "Merrill", target.FName)

	empty := &person{}
	require.NoError(t, goflat.Merge(rec, empty))
	assert.Equal(t, "Stubing", empty.LName)
	assert.Equal(t, "Captain", empty.FName)
}

func TestMerge_ExistingAgeIsKept(t *testing.T) {
	rec := parsePerson(t, personLine("Captain", "Stubing", "", "4", "", ""))
	age := 50
	target := &person{Age: &age}
	require.NoError(t, goflat.Merge(rec, target))
	assert.Equal(t, 50, *target.Age)
}

func TestMerge_MapTarget(t *testing.T) {
	rec := parsePerson(t, personLine("Captain", "Stubing", "", "4", "", ""))
	target := map[string]any{"f_name": "Kept"}

	// phone has a custom merge written for *person
	err := goflat.Merge(rec, target)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone")

	// fields before the failing one stay applied
	assert.Equal(t, "Kept", target["f_name"])
	assert.Equal(t, "Stubing", target["l_name"])
}

func TestMerge_MapTargetWithoutCustomMerge(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("a", goflat.Width(2))
	_, _ = s.AddPad("gap", goflat.Width(1))
	rec, err := s.Codec().Parse("xy.")
	require.NoError(t, err)

	target := map[string]any{}
	require.NoError(t, goflat.Merge(rec, target))
	assert.Equal(t, map[string]any{"a": "xy"}, target)
}

type taggedTarget struct {
	Surname string `flat:"l_name"`
	First   string `flat:"-"`
	FName   string
	hidden  string
}

func TestMerge_SkipsUnsettableTargets(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("l_name", goflat.Width(3))
	_, _ = s.AddField("first", goflat.Width(3))
	_, _ = s.AddField("f_name", goflat.Width(3))
	_, _ = s.AddField("hidden", goflat.Width(3))
	called := false
	_, _ = s.AddField("absent", goflat.Width(1), goflat.WithMerge(func(any, *goflat.Record) error {
		called = true
		return nil
	}))
	rec, err := s.Codec().Parse("abcdefghijklm")
	require.NoError(t, err)

	target := &taggedTarget{}
	require.NoError(t, goflat.Merge(rec, target))
	assert.Equal(t, "abc", target.Surname)
	assert.Equal(t, "", target.First)
	assert.Equal(t, "ghi", target.FName)
	assert.Equal(t, "", target.hidden)
	assert.False(t, called, "custom merge runs only for settable targets")
}

func TestMerge_TargetTypeMismatch(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("count", goflat.Width(2))
	rec, err := s.Codec().Parse("12")
	require.NoError(t, err)

	var target struct{ Count int }
	err = goflat.Merge(rec, &target)
	var tte *goflat.TargetTypeError
	require.ErrorAs(t, err, &tte)
	assert.Equal(t, "count", tte.Field)
	assert.Equal(t, "int", tte.Want)
	assert.Equal(t, "string", tte.Got)
}

func TestMerge_UnsupportedTarget(t *testing.T) {
	rec := parsePerson(t, personLine("A", "B", "", "1", "", ""))
	// struct values are read-only: nothing is settable
	assert.NoError(t, goflat.Merge(rec, person{}))
	assert.True(t, errors.Is(goflat.Merge(rec, 3), goflat.ErrUnsupportedTarget))
	assert.Error(t, goflat.Merge(nil, &person{}))
}

func TestMerge_PointerToZeroIsSet(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("n", goflat.Width(1), goflat.Filter(parseInt))
	rec, err := s.Codec().Parse("7")
	require.NoError(t, err)

	zero := 0
	kept := struct{ N *int }{N: &zero}
	require.NoError(t, goflat.Merge(rec, &kept))
	require.NotNil(t, kept.N)
	assert.Equal(t, 0, *kept.N)

	var filled struct{ N *int }
	require.NoError(t, goflat.Merge(rec, &filled))
	require.NotNil(t, filled.N)
	assert.Equal(t, 7, *filled.N)
}

func TestMerge_LossyNumericConversionFails(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("n", goflat.Width(3), goflat.Aggressive())
	c := s.Codec()

	cases := []struct {
		name   string
		value  any
		target any
		want   string
	}{
		{"int overflows int8", 300, &struct{ N int8 }{}, "int8"},
		{"fraction into int", 4.9, &struct{ N int }{}, "int"},
		{"negative into uint", -1, &struct{ N uint }{}, "uint"},
		{"float64 overflows float32", 1e300, &struct{ N float32 }{}, "float32"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := goflat.NewRecord(c.Schema(), map[string]any{"n": tc.value})
			require.NoError(t, err)
			err = goflat.Merge(rec, tc.target)
			var tte *goflat.TargetTypeError
			require.ErrorAs(t, err, &tte, spew.Sdump(tc.target))
			assert.Equal(t, tc.want, tte.Want)
		})
	}
}

func TestMerge_ExactNumericConversion(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("a", goflat.Width(1))
	_, _ = s.AddField("b", goflat.Width(1))
	_, _ = s.AddField("c", goflat.Width(1))
	rec, err := goflat.NewRecord(s, map[string]any{"a": 120, "b": 4.0, "c": 2.5})
	require.NoError(t, err)

	var target struct {
		A int8
		B int
		C float32
	}
	require.NoError(t, goflat.Merge(rec, &target))
	assert.Equal(t, int8(120), target.A)
	assert.Equal(t, 4, target.B)
	assert.Equal(t, float32(2.5), target.C)
}

func TestMerge_CustomMergeWinsOverAggressive(t *testing.T) {
	s := goflat.NewSchema()
	_, _ = s.AddField("f_name", goflat.Width(5))
	_, _ = s.AddField("phone", goflat.Width(5), goflat.Aggressive(), goflat.WithMerge(keepPhone))
	rec, err := s.Codec().Parse("Julie12345")
	require.NoError(t, err)

	target := &person{Phone: "99999"}
	require.NoError(t, goflat.Merge(rec, target))
	assert.Equal(t, "99999", target.Phone)
	assert.Equal(t, "Julie", target.FName)

	empty := &person{}
	require.NoError(t, goflat.Merge(rec, empty))
	assert.Equal(t, "12345", empty.Phone)
}
