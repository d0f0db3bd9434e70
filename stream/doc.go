// File: doc.go
// Title: Stream Package Documentation
// Description: Documents the token stream used by the VCL parse engine.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial documentation

/*
Package stream provides the cursor-addressable token sequence consumed by
the VCL parse engine.

The stream supports speculative parsing through a snapshot stack:

	s.Snapshot()
	if err := tryParse(s); err != nil {
		s.Rollback() // exact pre-snapshot state, mutations included
	} else {
		s.Commit()
	}

Snapshots store full copies of cursor and tokens, so Insert and Replace
mutations performed during a trial are undone by Rollback. An unbalanced
Commit or Rollback is a programming defect and panics.
*/
package stream
