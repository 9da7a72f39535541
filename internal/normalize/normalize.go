// Package normalize reduces raw listing text to the characters the tagger
// understands: Ethiopic syllables (U+1200 to U+1350), ASCII digits, '/' and
// single spaces.
//
// Normalize reports usable text with a boolean rather than an error. A false
// result is the "empty" outcome: the input was blank, not text at all, or
// nothing survived filtering. Callers skip such records instead of failing.
//
// All functions are safe for concurrent use.
package normalize

import (
	"database/sql"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

const (
	ethiopicFirst = 'ሀ' // U+1200
	ethiopicLast  = 'ፐ' // U+1350
)

// disallowed removes every rune outside the allowed classes. Invalid UTF-8
// reaches the predicate as utf8.RuneError and is removed with it.
var disallowed = runes.Remove(runes.Predicate(func(r rune) bool {
	return !Allowed(r)
}))

// Allowed reports whether r survives normalization.
func Allowed(r rune) bool {
	switch {
	case r >= ethiopicFirst && r <= ethiopicLast:
		return true
	case r >= '0' && r <= '9':
		return true
	case r == '/':
		return true
	}
	return unicode.IsSpace(r)
}

// Normalize filters text to the allowed characters, collapses whitespace
// runs (newlines included) to a single space and trims the ends.
// It returns ("", false) when no usable text remains.
func Normalize(text string) (string, bool) {
	if strings.TrimSpace(text) == "" {
		return "", false
	}

	filtered, _, _ := transform.String(disallowed, text)

	fields := strings.Fields(filtered)
	if len(fields) == 0 {
		return "", false
	}
	return strings.Join(fields, " "), true
}

// Value normalizes a loosely typed field, as read from a CSV cell or a
// nullable column. Anything that is not text normalizes to empty.
func Value(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return Normalize(s)
	case *string:
		if s == nil {
			return "", false
		}
		return Normalize(*s)
	case []byte:
		return Normalize(string(s))
	case sql.NullString:
		if !s.Valid {
			return "", false
		}
		return Normalize(s.String)
	default:
		return "", false
	}
}

// Tokens splits normalized text on whitespace.
func Tokens(s string) []string {
	return strings.Fields(s)
}
