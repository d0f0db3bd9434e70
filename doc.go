// File: doc.go
// Title: VCL Package Documentation
// Description: Documents the top-level VCL engine API.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial documentation

/*
Package vcl implements the Verb Command Language engine: a declarative
command grammar (verbs, sub-verbs, options, positional arguments) parsed
by recursive descent with speculative backtracking into a typed result
record.

The engine ties the pieces together:

	engine, _ := vcl.NewEngine()
	engine.Register(&registry.Command{
		Grammar: mvGrammar,
		Handler: handleMove,
	})
	inv, err := engine.Execute(ctx, "alice", `mv "my file.txt" backup/`)

Grammars can be built in code against the grammar package or loaded from
YAML/TOML documents. Parsing alone, without dispatch, is available via
Parse and ParseLine.

The sub-packages can be used independently: tokenize splits raw lines,
grammar models and validates definitions, parser drives the descent,
record holds results, and registry maps command names to handlers.
*/
package vcl
