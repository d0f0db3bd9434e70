// File: doc.go
// Title: Resolver Package Documentation
// Description: Documents the type resolver abstraction and built-ins.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

/*
Package resolver converts tokens into typed values for the VCL parse engine.

A Resolver consumes one or more tokens starting at the stream cursor and
returns a typed value or a tagged input error. Built-ins cover strings,
integers, floats (inf/nan allowed), strict booleans, enumerations, and
variadic sequences. Hosts can extend the set with resolver.Func:

	upper := resolver.Func(func(s *stream.Stream) (interface{}, error) {
		tok, ok := s.Current()
		if !ok {
			return nil, vclerr.New(vclerr.KindInput,
				vclerr.CodeInsufficientArguments, "unexpected end of input")
		}
		s.Consume()
		return strings.ToUpper(tok), nil
	})

On failure the stream state is undefined; callers snapshot first when the
resolution may be rolled back.
*/
package resolver
