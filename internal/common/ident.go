package common

import (
	"unicode"
	"unicode/utf8"
)

// IsIdentifier reports whether s is a valid Go identifier.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return utf8.ValidString(s)
}

// IsExportedIdentifier reports whether s is a valid exported Go identifier.
func IsExportedIdentifier(s string) bool {
	if !IsIdentifier(s) {
		return false
	}

	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsUpper(r)
}
