// File: stream.go
// Title: Token Stream with Snapshot Support
// Description: Implements the cursor-addressable token stream consumed by
//              the VCL parse engine. Supports in-place token insertion and
//              replacement plus an exact save/restore stack that makes
//              speculative (trial) parsing possible.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package stream

// Stream is a cursor over an ordered sequence of string tokens.
//
// A Stream is created per parse invocation and is not safe for concurrent
// use. The snapshot stack stores full copies of cursor and token sequence:
// after Rollback the stream is bit-for-bit identical to the moment of the
// matching Snapshot, including any Insert/Replace mutations performed in
// between.
type Stream struct {
	tokens []string
	cursor int
	saved  []snapshot
}

// snapshot is one saved copy of the full stream state
type snapshot struct {
	tokens []string
	cursor int
}

// New creates a stream over a copy of the given tokens
func New(tokens []string) *Stream {
	owned := make([]string, len(tokens))
	copy(owned, tokens)

	return &Stream{tokens: owned}
}

// Current returns the token at the cursor, or false at the end
func (s *Stream) Current() (string, bool) {
	if s.cursor >= len(s.tokens) {
		return "", false
	}
	return s.tokens[s.cursor], true
}

// IsEnd reports whether the cursor is past the last token
func (s *Stream) IsEnd() bool {
	return s.cursor >= len(s.tokens)
}

// Consume advances the cursor by one token. At the end it is a no-op.
func (s *Stream) Consume() {
	if s.cursor < len(s.tokens) {
		s.cursor++
	}
}

// Insert splices a new token in at the cursor position so that it becomes
// the current token. Used to split an attached option value (--opt=val,
// -oVAL) into its own token.
func (s *Stream) Insert(token string) {
	s.tokens = append(s.tokens, "")
	copy(s.tokens[s.cursor+1:], s.tokens[s.cursor:])
	s.tokens[s.cursor] = token
}

// Replace overwrites the token at the cursor. At the end it is a no-op.
func (s *Stream) Replace(token string) {
	if s.cursor < len(s.tokens) {
		s.tokens[s.cursor] = token
	}
}

// Snapshot pushes a deep copy of the current cursor and token sequence
// onto the save stack. Every Snapshot must be paired with exactly one
// Commit or Rollback before the enclosing parse step returns.
func (s *Stream) Snapshot() {
	tokens := make([]string, len(s.tokens))
	copy(tokens, s.tokens)

	s.saved = append(s.saved, snapshot{tokens: tokens, cursor: s.cursor})
}

// Commit discards the top saved copy and keeps the current state
func (s *Stream) Commit() {
	if len(s.saved) == 0 {
		panic("vcl/stream: Commit without matching Snapshot")
	}
	s.saved = s.saved[:len(s.saved)-1]
}

// Rollback restores cursor and token sequence from the top saved copy and
// discards it
func (s *Stream) Rollback() {
	if len(s.saved) == 0 {
		panic("vcl/stream: Rollback without matching Snapshot")
	}

	top := s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	s.tokens = top.tokens
	s.cursor = top.cursor
}

// Depth returns the number of open snapshots
func (s *Stream) Depth() int {
	return len(s.saved)
}

// Pos returns the current cursor position
func (s *Stream) Pos() int {
	return s.cursor
}

// Len returns the current number of tokens in the stream
func (s *Stream) Len() int {
	return len(s.tokens)
}

// Remaining returns the number of tokens at and after the cursor
func (s *Stream) Remaining() int {
	return len(s.tokens) - s.cursor
}

// Tokens returns a copy of the current token sequence
func (s *Stream) Tokens() []string {
	tokens := make([]string, len(s.tokens))
	copy(tokens, s.tokens)
	return tokens
}
