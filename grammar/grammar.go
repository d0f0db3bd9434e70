// File: grammar.go
// Title: Grammar Definition Types
// Description: Defines the declarative Verb/Option/Argument tree consumed
//              by the VCL parse engine. Grammars are authored once by the
//              host application, validated at registration time, and then
//              treated as immutable and shareable across concurrent parses.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial grammar definitions

package grammar

import (
	"strings"

	"github.com/msto63/vcl/resolver"
)

// ArgumentDefinition declares one typed argument slot, either a positional
// of a verb or an operand of an option
type ArgumentDefinition struct {
	// ID is the identifier the parsed value is bound under
	ID string

	// Type converts tokens into the argument's value
	Type resolver.Resolver

	// Optional marks the argument as omissible
	Optional bool

	// Default is bound when an optional argument is not supplied.
	// Required whenever Optional is true.
	Default interface{}
}

// OptionDefinition declares a flag, optionally carrying its own operands
type OptionDefinition struct {
	// ID is the identifier of the option's occurrence counter; the
	// operands bind under their own argument ids
	ID string

	// Names are the matching forms: long names start with "--", short
	// names are a single dash followed by one character. Names must be
	// unique within the owning verb.
	Names []string

	// Args are the option's own operands, parsed in order
	Args []*ArgumentDefinition
}

// Matches reports whether name is one of the option's declared names
func (o *OptionDefinition) Matches(name string) bool {
	for _, n := range o.Names {
		if n == name {
			return true
		}
	}
	return false
}

// DisplayName returns the first declared name for error messages
func (o *OptionDefinition) DisplayName() string {
	if len(o.Names) > 0 {
		return o.Names[0]
	}
	return o.ID
}

// VerbDefinition declares one command or sub-command node. Well-formed
// grammars form a tree; the engine tolerates accidental cycles.
type VerbDefinition struct {
	// ID is the identifier the verb's record (and its own true marker)
	// is bound under
	ID string

	// Name is the display name matched against input tokens. The empty
	// string marks an unnamed verb, matched only by trial parsing.
	Name string

	// Aliases are additional names matched like Name
	Aliases []string

	// Positionals are the verb's positional argument slots, in order
	Positionals []*ArgumentDefinition

	// Options are the verb's flags
	Options []*OptionDefinition

	// Subverbs are the child verbs, named or unnamed
	Subverbs []*VerbDefinition
}

// IsUnnamed reports whether the verb can only be matched by trial parsing
func (v *VerbDefinition) IsUnnamed() bool {
	return v.Name == ""
}

// MatchesToken reports whether the token matches the verb's name or one of
// its aliases. Unnamed verbs never match by token.
func (v *VerbDefinition) MatchesToken(token string) bool {
	if v.IsUnnamed() {
		return false
	}
	if v.Name == token {
		return true
	}
	for _, alias := range v.Aliases {
		if alias == token {
			return true
		}
	}
	return false
}

// FindOption returns the option matching the given name, or nil
func (v *VerbDefinition) FindOption(name string) *OptionDefinition {
	for _, opt := range v.Options {
		if opt.Matches(name) {
			return opt
		}
	}
	return nil
}

// IsLongOptionName reports whether name has the long form "--name"
func IsLongOptionName(name string) bool {
	return strings.HasPrefix(name, "--") && len(name) > 2
}

// IsShortOptionName reports whether name has the short form "-c"
func IsShortOptionName(name string) bool {
	return len(name) == 2 && name[0] == '-' && name[1] != '-'
}
