// File: doc.go
// Title: Parser Package Documentation
// Description: Documents the recursive-descent parse engine.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial documentation

/*
Package parser implements the VCL parse engine.

The engine performs a recursive descent over a validated grammar
definition, consuming a token stream and producing a result record:

	p := parser.New(parser.Options{})
	rec, err := p.Parse(grammarDef, []string{"mv", "a.txt", "b.txt"})

Options are recognized in long form ("--name", "--name=value") and short
form ("-c", including clusters like "-abc" and attached values like
"-oVAL"). A bare "--" token disables option recognition for the rest of
the current verb. Every recognized option increments an occurrence
counter under its id; operand values bind under their own argument ids.

Sub-verbs are matched by name or alias. Unnamed sub-verbs are resolved by
trial parsing: each candidate runs under a stream snapshot and the first
one to complete wins. Trailing optional arguments backtrack the same way,
falling back to their declared defaults.

Once the input is exhausted the engine fills every remaining declared
slot from defaults, so a successful parse binds every positional, option,
and reachable all-optional unnamed sub-verb id. Default filling carries a
visited set and terminates even on accidentally cyclic grammars.

A Parser holds no per-invocation state and may be shared across
goroutines.
*/
package parser
