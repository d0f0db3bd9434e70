// File: doc.go
// Title: Registry Package Documentation
// Description: Documents the command registry and dispatcher.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial documentation

/*
Package registry maps leading command names to registered grammars and
handlers.

The registry sits between the tokenizer and the parse engine: the first
token selects a registered command by its grammar's name or alias, the
remaining parse runs against that grammar, and the handler receives an
Invocation carrying the result record, the acting user, and a request id
for correlation.

	reg := registry.New(registry.Options{})
	reg.Register(&registry.Command{
		Grammar: mvGrammar,
		Handler: func(ctx context.Context, inv *registry.Invocation) error {
			src, _ := inv.Record.GetString("src")
			...
		},
	})
	inv, err := reg.Dispatch(ctx, "alice", tokens)

An optional PermissionChecker is consulted before parsing; denial is an
input error carrying the user and command names.
*/
package registry
