package i18n

import (
	"strings"
	"sync"
)

// Translator retrieves localized messages for error codes.
// data provides optional values to embed in the message (for example,
// "expected" or "name"); placeholders are written as {key}.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"record_length":    "record length is {actual} but should be {expected}",
		"duplicate_field":  "field {name} is already declared",
		"duplicate_layout": "layout {name} is already declared",
		"unknown_field":    "unknown field {name}",
		"unknown_filter":   "unknown transform {reference}",
		"construction":     "invalid declaration: {reason}",
		"sealed":           "schema is sealed",
		"filter_failed":    "filter failed on field {name}",
		"format_failed":    "formatter failed on field {name}",
		"target_type":      "cannot assign {got} to field {name} of type {want}",
	},
	"ja": {
		"record_length":    "レコード長が不正です（{actual}、期待値 {expected}）",
		"duplicate_field":  "フィールド {name} は既に宣言されています",
		"duplicate_layout": "レイアウト {name} は既に宣言されています",
		"unknown_field":    "未知のフィールドです: {name}",
		"unknown_filter":   "未知の変換です: {reference}",
		"construction":     "宣言が不正です: {reason}",
		"sealed":           "スキーマは確定済みです",
		"filter_failed":    "フィールド {name} のフィルタが失敗しました",
		"format_failed":    "フィールド {name} のフォーマッタが失敗しました",
		"target_type":      "フィールド {name}（{want}）に {got} を代入できません",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	return interpolate(msg, data)
}

func interpolate(msg string, data map[string]string) string {
	if len(data) == 0 || !strings.Contains(msg, "{") {
		return msg
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(msg)
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	SetTranslator(dictTranslator{lang: lang})
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version). A nil Translator restores the English dictionary.
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
