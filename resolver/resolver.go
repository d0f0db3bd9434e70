// File: resolver.go
// Title: Argument Type Resolvers
// Description: Implements the type resolver abstraction used by the VCL
//              parse engine to convert tokens into typed values, together
//              with the built-in resolvers for strings, integers, floats,
//              booleans, enumerations, and variadic sequences.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation with built-in resolvers

package resolver

import (
	"strconv"
	"strings"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/stream"
)

// Resolver converts one or more tokens at the stream cursor into a typed
// value. On failure the stream is left in an undefined state: callers that
// may want to retry must wrap the invocation in a stream snapshot.
type Resolver interface {
	Resolve(s *stream.Stream) (interface{}, error)
}

// Func adapts a plain function to the Resolver interface, keeping the set
// of resolvers extensible by the host application
type Func func(s *stream.Stream) (interface{}, error)

// Resolve implements the Resolver interface
func (f Func) Resolve(s *stream.Stream) (interface{}, error) {
	return f(s)
}

// next returns the current token or an input error at the end of the stream
func next(s *stream.Stream) (string, error) {
	tok, ok := s.Current()
	if !ok {
		return "", vclerr.New(vclerr.KindInput, vclerr.CodeInsufficientArguments,
			"insufficient arguments: unexpected end of input")
	}
	return tok, nil
}

// stringResolver consumes one token verbatim
type stringResolver struct{}

// String returns a resolver that consumes one token verbatim
func String() Resolver {
	return stringResolver{}
}

func (stringResolver) Resolve(s *stream.Stream) (interface{}, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	s.Consume()
	return tok, nil
}

// intResolver consumes one token as a signed integer
type intResolver struct{}

// Int returns a resolver that consumes one token as a signed integer
func Int() Resolver {
	return intResolver{}
}

func (intResolver) Resolve(s *stream.Stream) (interface{}, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	value, convErr := strconv.ParseInt(tok, 10, 64)
	if convErr != nil {
		return nil, vclerr.Newf(vclerr.KindInput, vclerr.CodeInvalidValue,
			"not a number: %s", tok)
	}

	s.Consume()
	return value, nil
}

// floatResolver consumes one token as a float, accepting inf/nan and an
// optional sign
type floatResolver struct{}

// Float returns a resolver that consumes one token as a float. The token
// forms accepted by strconv.ParseFloat are allowed, including "inf",
// "nan", and signed variants.
func Float() Resolver {
	return floatResolver{}
}

func (floatResolver) Resolve(s *stream.Stream) (interface{}, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	value, convErr := strconv.ParseFloat(tok, 64)
	if convErr != nil {
		return nil, vclerr.Newf(vclerr.KindInput, vclerr.CodeInvalidValue,
			"not a number: %s", tok)
	}

	s.Consume()
	return value, nil
}

// boolResolver consumes one token as a boolean literal
type boolResolver struct{}

// Bool returns a resolver that accepts exactly the literals "true" and
// "false"
func Bool() Resolver {
	return boolResolver{}
}

func (boolResolver) Resolve(s *stream.Stream) (interface{}, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	switch tok {
	case "true":
		s.Consume()
		return true, nil
	case "false":
		s.Consume()
		return false, nil
	default:
		return nil, vclerr.Newf(vclerr.KindInput, vclerr.CodeInvalidValue,
			"not a boolean: %s", tok)
	}
}

// enumResolver consumes one token that must be a member of a fixed set
type enumResolver struct {
	values []string
}

// Enum returns a resolver that accepts only tokens from the given set
func Enum(values ...string) Resolver {
	owned := make([]string, len(values))
	copy(owned, values)
	return enumResolver{values: owned}
}

func (e enumResolver) Resolve(s *stream.Stream) (interface{}, error) {
	tok, err := next(s)
	if err != nil {
		return nil, err
	}

	for _, v := range e.values {
		if tok == v {
			s.Consume()
			return tok, nil
		}
	}

	return nil, vclerr.Newf(vclerr.KindInput, vclerr.CodeInvalidValue,
		"invalid value %s, expected one of: %s", tok, strings.Join(e.values, ", "))
}

// variadicResolver repeatedly applies an inner resolver until the stream
// ends
type variadicResolver struct {
	inner Resolver
}

// Variadic returns a resolver that applies inner until the stream ends and
// collects the results into a slice. Any inner failure fails the whole
// resolution.
func Variadic(inner Resolver) Resolver {
	return variadicResolver{inner: inner}
}

func (v variadicResolver) Resolve(s *stream.Stream) (interface{}, error) {
	values := make([]interface{}, 0)

	for !s.IsEnd() {
		value, err := v.inner.Resolve(s)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	return values, nil
}
