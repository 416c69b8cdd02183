package domain

import (
	"strings"
)

// NormalizeLemma prepares a lemma for duplicate detection: whitespace is
// trimmed and collapsed, letters are lower-cased. Diacritics, hyphens and
// apostrophes are preserved.
func NormalizeLemma(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	return strings.ToLower(strings.Join(fields, " "))
}

// CleanText trims surrounding whitespace of free-form text fields.
func CleanText(text string) string {
	return strings.TrimSpace(text)
}

// CleanTextPtr applies CleanText to an optional field.
func CleanTextPtr(text *string) *string {
	if text == nil {
		return nil
	}
	s := CleanText(*text)
	return &s
}
