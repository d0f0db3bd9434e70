// File: resolver_test.go
// Title: Resolver Unit Tests
// Description: Tests for the built-in type resolvers including numeric
//              edge cases, strict boolean literals, enumerations, and
//              variadic sequences.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial test suite

package resolver

import (
	"math"
	"testing"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/stream"
)

func TestStringResolver(t *testing.T) {
	s := stream.New([]string{"hello world", "rest"})

	value, err := String().Resolve(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if value != "hello world" {
		t.Errorf("Expected 'hello world', got %v", value)
	}
	if s.Remaining() != 1 {
		t.Errorf("Expected one remaining token, got %d", s.Remaining())
	}
}

func TestIntResolver(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    int64
		wantErr bool
	}{
		{"Positive", "42", 42, false},
		{"Negative", "-7", -7, false},
		{"Explicit plus", "+3", 3, false},
		{"Zero", "0", 0, false},
		{"Float rejected", "3.14", 0, true},
		{"Garbage rejected", "abc", 0, true},
		{"Empty rejected", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stream.New([]string{tt.token})
			value, err := Int().Resolve(s)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.token)
				}
				if !vclerr.IsInput(err) {
					t.Errorf("Expected input error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if value != tt.want {
				t.Errorf("Expected %d, got %v", tt.want, value)
			}
		})
	}
}

func TestFloatResolver(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    float64
		wantErr bool
	}{
		{"Simple", "3.14", 3.14, false},
		{"Integer form", "2", 2, false},
		{"Signed", "-0.5", -0.5, false},
		{"Explicit plus", "+1.5", 1.5, false},
		{"Infinity", "inf", math.Inf(1), false},
		{"Negative infinity", "-inf", math.Inf(-1), false},
		{"Garbage rejected", "nope", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stream.New([]string{tt.token})
			value, err := Float().Resolve(s)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error for %q", tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if value != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, value)
			}
		})
	}
}

func TestFloatResolverNaN(t *testing.T) {
	s := stream.New([]string{"nan"})

	value, err := Float().Resolve(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if f, ok := value.(float64); !ok || !math.IsNaN(f) {
		t.Errorf("Expected NaN, got %v", value)
	}
}

func TestBoolResolver(t *testing.T) {
	tests := []struct {
		token   string
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"false", false, false},
		{"True", false, true}, // literals only, no case folding
		{"1", false, true},
		{"yes", false, true},
	}

	for _, tt := range tests {
		s := stream.New([]string{tt.token})
		value, err := Bool().Resolve(s)

		if tt.wantErr {
			if err == nil {
				t.Errorf("Expected error for %q", tt.token)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for %q: %v", tt.token, err)
			continue
		}
		if value != tt.want {
			t.Errorf("Expected %v for %q, got %v", tt.want, tt.token, value)
		}
	}
}

func TestEnumResolver(t *testing.T) {
	colors := Enum("red", "green", "blue")

	s := stream.New([]string{"green"})
	value, err := colors.Resolve(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if value != "green" {
		t.Errorf("Expected 'green', got %v", value)
	}

	s = stream.New([]string{"magenta"})
	if _, err := colors.Resolve(s); err == nil {
		t.Error("Expected error for value outside the set")
	}
}

func TestVariadicResolver(t *testing.T) {
	s := stream.New([]string{"1", "2", "3"})

	value, err := Variadic(Int()).Resolve(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	values, ok := value.([]interface{})
	if !ok {
		t.Fatalf("Expected slice, got %T", value)
	}
	if len(values) != 3 || values[0] != int64(1) || values[2] != int64(3) {
		t.Errorf("Unexpected values: %v", values)
	}
	if !s.IsEnd() {
		t.Error("Expected variadic to consume the whole stream")
	}
}

func TestVariadicResolverEmptyStream(t *testing.T) {
	value, err := Variadic(String()).Resolve(stream.New(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if values := value.([]interface{}); len(values) != 0 {
		t.Errorf("Expected empty slice, got %v", values)
	}
}

func TestVariadicResolverInnerFailure(t *testing.T) {
	s := stream.New([]string{"1", "oops", "3"})

	if _, err := Variadic(Int()).Resolve(s); err == nil {
		t.Error("Expected inner failure to fail the whole resolution")
	}
}

func TestResolverAtEndOfStream(t *testing.T) {
	resolvers := map[string]Resolver{
		"string": String(),
		"int":    Int(),
		"float":  Float(),
		"bool":   Bool(),
		"enum":   Enum("a"),
	}

	for name, r := range resolvers {
		_, err := r.Resolve(stream.New(nil))
		if err == nil {
			t.Errorf("Expected %s resolver to fail at end of stream", name)
			continue
		}
		if vclerr.CodeOf(err) != vclerr.CodeInsufficientArguments {
			t.Errorf("Expected INSUFFICIENT_ARGUMENTS for %s, got %s", name, vclerr.CodeOf(err))
		}
	}
}

func TestFuncResolver(t *testing.T) {
	double := Func(func(s *stream.Stream) (interface{}, error) {
		tok, ok := s.Current()
		if !ok {
			return nil, vclerr.New(vclerr.KindInput, vclerr.CodeInsufficientArguments,
				"unexpected end of input")
		}
		s.Consume()
		return tok + tok, nil
	})

	value, err := double.Resolve(stream.New([]string{"ab"}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if value != "abab" {
		t.Errorf("Expected 'abab', got %v", value)
	}
}
