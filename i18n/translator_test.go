package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	assert.Equal(t, "unknown field age", T("unknown_field", map[string]string{"name": "age"}))

	SetLanguage("ja")
	defer SetLanguage("en")
	msg := T("unknown_field", map[string]string{"name": "age"})
	assert.NotEqual(t, "unknown field age", msg)
	assert.Contains(t, msg, "age")
}

func TestTranslator_Interpolation(t *testing.T) {
	msg := T("record_length", map[string]string{"expected": "40", "actual": "31"})
	assert.Equal(t, "record length is 31 but should be 40", msg)
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	assert.Equal(t, "X:sealed", T("sealed", nil))
}
