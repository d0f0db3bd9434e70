// File: doc.go
// Title: Record Package Documentation
// Description: Documents the parse result record.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

/*
Package record provides the result accumulator produced by a VCL parse.

A record maps declared identifiers to values. Flag occurrences live in
counting slots (Increment/Count), matched sub-verbs bind their own nested
*Record under the sub-verb's id, and every verb binds its own id to true in
its own record:

	rec, _ := engine.Parse(grammarDef, tokens)
	if sub, ok := rec.GetRecord("add"); ok {
		name, _ := sub.GetString("name")
		...
	}
*/
package record
