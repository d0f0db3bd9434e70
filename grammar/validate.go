// File: validate.go
// Title: Grammar Validation
// Description: Implements registration-time validation of grammar
//              definitions. Detects authoring defects (required arguments
//              after optional ones, duplicate or malformed option names,
//              missing defaults) before any input token is consumed.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-12
// Modified: 2025-08-12
//
// Change History:
// - 2025-08-12 v0.1.0: Initial validation pass

package grammar

import (
	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/utils/stringx"
)

// Validate checks the whole grammar reachable from root for authoring
// defects and returns a grammar definition error for the first one found.
// The walk is keyed by verb identity and therefore terminates even on
// accidentally cyclic grammars.
func Validate(root *VerbDefinition) error {
	if root == nil {
		return vclerr.New(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"grammar root must not be nil")
	}

	return validateVerb(root, make(map[*VerbDefinition]bool))
}

// validateVerb validates one verb and recurses into its children
func validateVerb(v *VerbDefinition, visited map[*VerbDefinition]bool) error {
	if visited[v] {
		return nil
	}
	visited[v] = true

	if stringx.IsBlank(v.ID) {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"verb %q has no id", v.Name)
	}

	if err := validateArguments(v.Positionals, v.ID); err != nil {
		return err
	}

	seenNames := make(map[string]string)
	for _, opt := range v.Options {
		if err := validateOption(opt, v.ID, seenNames); err != nil {
			return err
		}
	}

	for _, sub := range v.Subverbs {
		if sub == nil {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
				"verb %s has a nil subverb", v.ID)
		}
		if err := validateVerb(sub, visited); err != nil {
			return err
		}
	}

	return nil
}

// validateOption validates one option and records its names in seenNames
func validateOption(opt *OptionDefinition, verbID string, seenNames map[string]string) error {
	if opt == nil {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"verb %s has a nil option", verbID)
	}
	if stringx.IsBlank(opt.ID) {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"option in verb %s has no id", verbID)
	}
	if len(opt.Names) == 0 {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"option %s in verb %s declares no names", opt.ID, verbID)
	}

	for _, name := range opt.Names {
		if !IsLongOptionName(name) && !IsShortOptionName(name) {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidOptionName,
				"option %s in verb %s has malformed name %q", opt.ID, verbID, name)
		}
		if owner, exists := seenNames[name]; exists {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeDuplicateOption,
				"duplicate option name %s in verb %s (already used by %s)", name, verbID, owner)
		}
		seenNames[name] = opt.ID
	}

	return validateArguments(opt.Args, verbID)
}

// validateArguments checks an ordered argument list: every argument needs
// an id and a resolver, optional arguments need a default, and no required
// argument may follow an optional one.
func validateArguments(args []*ArgumentDefinition, verbID string) error {
	optionalSeen := false

	for _, arg := range args {
		if arg == nil {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
				"verb %s has a nil argument", verbID)
		}
		if stringx.IsBlank(arg.ID) {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
				"argument in verb %s has no id", verbID)
		}
		if arg.Type == nil {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
				"argument %s in verb %s has no type resolver", arg.ID, verbID)
		}

		if arg.Optional {
			if arg.Default == nil {
				return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
					"optional argument %s in verb %s has no default", arg.ID, verbID)
			}
			optionalSeen = true
			continue
		}

		if optionalSeen {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeArgumentOrder,
				"required argument %s in verb %s follows an optional one", arg.ID, verbID)
		}
	}

	return nil
}
