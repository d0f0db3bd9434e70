// File: record.go
// Title: Parse Result Record
// Description: Implements the result accumulator written by the VCL parse
//              engine. Maps declared identifiers to parsed values, keeps
//              occurrence counters for repeated flags, and nests child
//              records for matched sub-verbs.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial implementation

package record

import (
	"fmt"
	"sort"
	"strings"
)

// Record maps declared identifiers to parsed values.
//
// A Record is created per parse invocation, mutated only by the parse
// engine, and returned to the caller as the sole parse output. It is not
// safe for concurrent use; parsing is synchronous and single-threaded.
type Record struct {
	values map[string]interface{}
}

// Entry is one id/value binding of a record
type Entry struct {
	ID    string
	Value interface{}
}

// New creates an empty record
func New() *Record {
	return &Record{values: make(map[string]interface{})}
}

// Set binds a value under the given id, replacing any existing binding
func (r *Record) Set(id string, value interface{}) {
	r.values[id] = value
}

// Get returns the value bound under the given id
func (r *Record) Get(id string) (interface{}, bool) {
	v, ok := r.values[id]
	return v, ok
}

// Has reports whether a binding exists for the given id
func (r *Record) Has(id string) bool {
	_, ok := r.values[id]
	return ok
}

// Delete removes the binding for the given id
func (r *Record) Delete(id string) {
	delete(r.values, id)
}

// Clear removes all bindings
func (r *Record) Clear() {
	r.values = make(map[string]interface{})
}

// Len returns the number of bindings
func (r *Record) Len() int {
	return len(r.values)
}

// Keys returns all bound ids, sorted
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// Entries returns all bindings, sorted by id
func (r *Record) Entries() []Entry {
	entries := make([]Entry, 0, len(r.values))
	for _, id := range r.Keys() {
		entries = append(entries, Entry{ID: id, Value: r.values[id]})
	}
	return entries
}

// Increment increments the counting slot under the given id, initializing
// it to zero first, and returns the new count. Used for repeated flag
// occurrences.
func (r *Record) Increment(id string) int {
	count := 0
	if existing, ok := r.values[id].(int); ok {
		count = existing
	}

	count++
	r.values[id] = count
	return count
}

// Count returns the occurrence count bound under the given id, or zero if
// the id is unbound or bound to a non-counter value
func (r *Record) Count(id string) int {
	if count, ok := r.values[id].(int); ok {
		return count
	}
	return 0
}

// Merge copies all bindings of other into this record, last write wins on
// id collisions
func (r *Record) Merge(other *Record) {
	if other == nil {
		return
	}
	for k, v := range other.values {
		r.values[k] = v
	}
}

// Typed accessors for the common value shapes produced by the built-in
// resolvers.

// GetString returns the string bound under the given id
func (r *Record) GetString(id string) (string, bool) {
	v, ok := r.values[id].(string)
	return v, ok
}

// GetInt returns the integer bound under the given id
func (r *Record) GetInt(id string) (int64, bool) {
	v, ok := r.values[id].(int64)
	return v, ok
}

// GetFloat returns the float bound under the given id
func (r *Record) GetFloat(id string) (float64, bool) {
	v, ok := r.values[id].(float64)
	return v, ok
}

// GetBool returns the boolean bound under the given id
func (r *Record) GetBool(id string) (bool, bool) {
	v, ok := r.values[id].(bool)
	return v, ok
}

// GetRecord returns the nested record bound under the given id, as bound
// by the parse engine for a matched sub-verb
func (r *Record) GetRecord(id string) (*Record, bool) {
	v, ok := r.values[id].(*Record)
	return v, ok
}

// String returns a compact single-line representation for logs and tests
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("{")

	for i, entry := range r.Entries() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s=%v", entry.ID, entry.Value))
	}

	b.WriteString("}")
	return b.String()
}
