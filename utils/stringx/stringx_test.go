// File: stringx_test.go
// Title: String Utility Unit Tests
// Description: Tests for the blank-string and truncation helpers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n\r", true},
		{"a", false},
		{"  a  ", false},
		{" ", true}, // non-breaking space
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error("Expected empty string to be empty")
	}
	if IsEmpty(" ") {
		t.Error("Expected whitespace not to be empty")
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "fallback", "later"); got != "fallback" {
		t.Errorf("Expected 'fallback', got %q", got)
	}
	if got := FirstNonBlank("", "  "); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		max   int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"overlong", 4, "over…"},
		{"ünïcödé", 3, "ünï…"},
		{"anything", 0, "anything"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
		}
	}
}
