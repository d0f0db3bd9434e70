// File: doc.go
// Title: Grammar Package Documentation
// Description: Documents the declarative grammar model.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation
// - 2025-08-13 v0.1.0: Documented YAML/TOML loading

/*
Package grammar defines the declarative command model consumed by the VCL
parse engine.

A grammar is a tree of verb definitions. Every verb owns ordered positional
argument slots, a set of options (flags, each with its own operand list),
and child verbs. A verb without a name is an unnamed sub-verb: it cannot be
matched by token and is instead found by trial parsing in declaration order.

Grammars can be built in code:

	g := &grammar.VerbDefinition{
		ID:   "mv",
		Name: "mv",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "src", Type: resolver.String()},
			{ID: "dst", Type: resolver.String()},
		},
	}

or loaded from a YAML or TOML document via LoadFile/Load, where argument
types are named (string, int, float, bool, enum, variadic).

Validate checks a grammar for authoring defects: optional arguments without
defaults, required arguments after optional ones, malformed or duplicate
option names. The engine validates on registration, so a grammar that
parses anything at all is well-formed.

Validated grammars are immutable by convention and safe to share across
concurrent parses.
*/
package grammar
