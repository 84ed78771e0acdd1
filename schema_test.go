package goflat_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goflat "github.com/reoring/goflat"
)

func TestSchema_WidthIsSumOfFields(t *testing.T) {
	s := newPersonSchema(t)
	require.Equal(t, 40, s.Width())

	sum := 0
	for _, f := range s.Fields() {
		sum += f.Width()
	}
	assert.Equal(t, s.Width(), sum)
}

func TestSchema_DuplicateField(t *testing.T) {
	s := goflat.NewSchema()
	_, err := s.AddField("age", goflat.Width(4))
	require.NoError(t, err)

	_, err = s.AddField("age", goflat.Width(4))
	var dup *goflat.DuplicateFieldError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "age", dup.Name)
	assert.True(t, errors.Is(err, goflat.ErrDuplicateField))
	assert.Equal(t, 4, s.Width(), "failed declaration must not change the schema")
}

func TestSchema_DefaultWidth(t *testing.T) {
	s := goflat.NewSchema()
	f, err := s.AddField("name")
	require.NoError(t, err)
	assert.Equal(t, goflat.DefaultWidth, f.Width())
}

func TestSchema_RejectsBadDeclarations(t *testing.T) {
	s := goflat.NewSchema()
	_, err := s.AddField("")
	assert.ErrorIs(t, err, goflat.ErrConstruction)
	_, err = s.AddField("zero", goflat.Width(0))
	assert.ErrorIs(t, err, goflat.ErrConstruction)
	assert.False(t, s.HasField("zero"))
}

func TestSchema_PadNamesAreUnique(t *testing.T) {
	s := goflat.NewSchema(goflat.WithPadNamer(goflat.NewPadCounter()))
	// occupy the first generated name
	_, err := s.AddField("pad_1", goflat.Width(1))
	require.NoError(t, err)

	a, err := s.AddPad(goflat.AutoName, goflat.Width(2))
	require.NoError(t, err)
	b, err := s.AddPad(goflat.AutoName, goflat.Width(2))
	require.NoError(t, err)

	assert.Equal(t, "pad_2", a.Name())
	assert.Equal(t, "pad_3", b.Name())
	assert.True(t, a.IsPadding())
}

func TestSchema_ProcessPadCounterIsShared(t *testing.T) {
	s1 := goflat.NewSchema()
	s2 := goflat.NewSchema()
	a, err := s1.AddPad(goflat.AutoName)
	require.NoError(t, err)
	b, err := s2.AddPad(goflat.AutoName)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(a.Name(), "pad_"))
	assert.NotEqual(t, a.Name(), b.Name())
}

func TestSchema_Offsets(t *testing.T) {
	s := newPersonSchema(t)
	start, end, ok := s.Offset("age")
	require.True(t, ok)
	assert.Equal(t, 30, start)
	assert.Equal(t, 34, end)

	_, _, ok = s.Offset("missing")
	assert.False(t, ok)
}

func TestSchema_NonPaddingFields(t *testing.T) {
	s := newPersonSchema(t)
	var names []string
	for _, f := range s.NonPaddingFields() {
		names = append(names, f.Name())
	}
	assert.Equal(t, []string{"f_name", "l_name", "phone", "age"}, names)
}

func TestSchema_SealedRejectsDeclarations(t *testing.T) {
	s := newPersonSchema(t)
	_ = s.Codec()
	require.True(t, s.Sealed())

	_, err := s.AddField("late")
	assert.ErrorIs(t, err, goflat.ErrSealed)
	_, err = s.AddPad(goflat.AutoName)
	assert.ErrorIs(t, err, goflat.ErrSealed)
	_, err = s.AddLayout("late", func(*goflat.Schema) error { return nil })
	assert.ErrorIs(t, err, goflat.ErrSealed)

	f, ok := s.Field("age")
	require.True(t, ok)
	assert.ErrorIs(t, f.AddFilter(parseInt), goflat.ErrSealed)
}

func TestFieldSpec_Policy(t *testing.T) {
	s := newPersonSchema(t)
	cases := map[string]goflat.MergePolicy{
		"f_name": goflat.OverwriteIfUnset,
		"l_name": goflat.AlwaysOverwrite,
		"phone":  goflat.CustomMerge,
	}
	for name, want := range cases {
		f, ok := s.Field(name)
		require.True(t, ok, name)
		assert.Equal(t, want, f.Policy(), name)
	}

	// custom merge wins over aggressive
	s2 := goflat.NewSchema()
	f, err := s2.AddField("x", goflat.Aggressive(), goflat.WithMerge(keepPhone))
	require.NoError(t, err)
	assert.Equal(t, goflat.CustomMerge, f.Policy())
	assert.Equal(t, "custom", f.Policy().String())
}
