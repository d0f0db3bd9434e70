// File: stringx.go
// Title: String Utility Functions
// Description: Implements the small set of string helpers the VCL engine
//              needs beyond the standard library, focused on blank-string
//              validation in user input and grammar checking paths.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string is empty (length 0)
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// FirstNonBlank returns the first string in the list that is not blank,
// or the empty string if all are blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if !IsBlank(v) {
			return v
		}
	}
	return ""
}

// Truncate shortens a string to at most max runes, appending an ellipsis
// when truncation happened. Used to keep log fields bounded.
func Truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)
	return string(runes[:max]) + "…"
}
