package models

import "strings"

// LocalizedText is a bilingual (es/en) string pair stored as two columns.
// Spanish is the primary language of the menu.
type LocalizedText struct {
	Es string `json:"es"`
	En string `json:"en"`
}

// Resolve returns the text for the requested language. Only "en"
// (case-insensitive) selects English; any other value selects Spanish.
// Selection is literal: an unset English field resolves to an empty string.
func (t LocalizedText) Resolve(lang string) string {
	if strings.EqualFold(lang, "en") {
		return t.En
	}
	return t.Es
}

// NormalizeLang collapses a requested language code to one of the two
// supported codes, defaulting to Spanish.
func NormalizeLang(lang string) string {
	if strings.EqualFold(lang, "en") {
		return "en"
	}
	return "es"
}
