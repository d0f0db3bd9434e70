// File: parser.go
// Title: Recursive-Descent Parse Engine
// Description: Implements the VCL parse engine. Walks a token stream
//              against a grammar definition, handling long and short
//              options with attached values, positional arguments,
//              named and unnamed sub-verbs with trial parsing, and
//              default propagation over possibly cyclic grammars.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial implementation

package parser

import (
	"strings"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/grammar"
	"github.com/msto63/vcl/record"
	"github.com/msto63/vcl/stream"
)

// DefaultMaxTrialDepth bounds the nesting of unnamed sub-verb trials.
// Deeply nested unnamed sub-verb chains can cause combinatorial trial
// parsing, so the engine refuses grammars that exceed this depth.
const DefaultMaxTrialDepth = 32

// Options configures a Parser
type Options struct {
	// Logger receives debug-level trace output. Defaults to the package
	// default logger with component=parser.
	Logger *log.Logger

	// MaxTrialDepth bounds the nesting of unnamed sub-verb trials.
	// Defaults to DefaultMaxTrialDepth.
	MaxTrialDepth int
}

// Parser drives the recursive descent over a grammar. A Parser holds no
// per-invocation state and is safe for concurrent use; each Parse call
// owns a private token stream and result record.
type Parser struct {
	logger        *log.Logger
	maxTrialDepth int
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault().WithField("component", "parser")
	}

	maxTrialDepth := opts.MaxTrialDepth
	if maxTrialDepth <= 0 {
		maxTrialDepth = DefaultMaxTrialDepth
	}

	return &Parser{
		logger:        logger,
		maxTrialDepth: maxTrialDepth,
	}
}

// state carries the per-invocation bookkeeping threaded through the
// recursion
type state struct {
	trialDepth int
}

// Parse validates the grammar, then parses tokens against it and returns
// the result record. A leading token matching the root verb's name or an
// alias is consumed, so callers may pass the full command line or just
// the part after the command name.
//
// Errors of kind input describe a problem with the tokens and are meant
// for the end user; errors of kind grammar describe a defect in the
// definition itself.
func (p *Parser) Parse(def *grammar.VerbDefinition, tokens []string) (*record.Record, error) {
	if err := grammar.Validate(def); err != nil {
		return nil, err
	}

	s := stream.New(tokens)
	rec := record.New()
	st := &state{}

	if tok, ok := s.Current(); ok && def.MatchesToken(tok) {
		s.Consume()
	}

	p.logger.Debug("parsing command", log.Fields{
		"verb":   def.ID,
		"tokens": len(tokens),
	})

	if err := p.parseVerb(def, s, rec, st); err != nil {
		return nil, err
	}

	if s.Depth() != 0 {
		panic("vcl/parser: unbalanced snapshot stack after parse")
	}

	return rec, nil
}

// parseVerb parses one verb's options, positionals, and sub-verb. The
// verb's own name token has already been consumed by the caller.
//
// The walk moves through three phases driven by token shape and slot
// exhaustion: option scanning, positional scanning, sub-verb resolution.
// Option tokens are recognized in any phase until an explicit "--"
// delimiter disables them for the rest of this verb.
func (p *Parser) parseVerb(def *grammar.VerbDefinition, s *stream.Stream, rec *record.Record, st *state) error {
	rec.Set(def.ID, true)

	posIndex := 0
	optionsEnabled := true

	for !s.IsEnd() {
		tok, _ := s.Current()

		if optionsEnabled && tok == "--" {
			s.Consume()
			optionsEnabled = false
			continue
		}

		if optionsEnabled && isOptionToken(tok) {
			var err error
			if strings.HasPrefix(tok, "--") {
				err = p.parseLongOption(def, s, rec, tok)
			} else {
				err = p.parseShortOption(def, s, rec, tok)
			}
			if err != nil {
				return err
			}
			continue
		}

		if posIndex < len(def.Positionals) {
			consumed, err := p.parsePositional(def, s, rec, posIndex)
			if err != nil {
				return err
			}
			if consumed {
				posIndex++
			} else {
				// Trailing optional positionals defaulted, the token
				// belongs to a sub-verb
				posIndex = len(def.Positionals)
			}
			continue
		}

		if len(def.Subverbs) == 0 {
			return vclerr.Newf(vclerr.KindInput, vclerr.CodeTooManyArguments,
				"too many arguments: %s", tok)
		}

		if err := p.parseSubverb(def, s, rec, st, tok); err != nil {
			return err
		}

		// A sub-verb consumed the rest of the stream
		return p.finishVerb(def, rec, posIndex, true)
	}

	return p.finishVerb(def, rec, posIndex, false)
}

// parsePositional parses the positional slot at posIndex against the
// current token. Required slots parse unconditionally. An optional slot is
// attempted under a snapshot: on failure the stream is rolled back, this
// slot and all remaining positionals receive their defaults, and false is
// returned so the caller routes the token to sub-verb resolution.
func (p *Parser) parsePositional(def *grammar.VerbDefinition, s *stream.Stream, rec *record.Record, posIndex int) (bool, error) {
	arg := def.Positionals[posIndex]

	if !arg.Optional {
		value, err := arg.Type.Resolve(s)
		if err != nil {
			return false, err
		}
		rec.Set(arg.ID, value)
		return true, nil
	}

	s.Snapshot()
	value, err := arg.Type.Resolve(s)
	if err != nil {
		s.Rollback()
		applyDefaults(rec, def.Positionals[posIndex:])
		return false, nil
	}
	s.Commit()

	rec.Set(arg.ID, value)
	return true, nil
}

// isOptionToken reports whether tok has option shape: a long "--name"
// form or a dash followed by at least one non-dash character. The bare
// "--" delimiter is handled by the caller before this check.
func isOptionToken(tok string) bool {
	if strings.HasPrefix(tok, "--") {
		return len(tok) > 2
	}
	return len(tok) > 1 && tok[0] == '-' && tok[1] != '-'
}

// parseLongOption parses a "--name" or "--name=value" token. An attached
// value is spliced back into the stream as its own token and marks the
// invocation adjacent.
func (p *Parser) parseLongOption(def *grammar.VerbDefinition, s *stream.Stream, rec *record.Record, tok string) error {
	name := tok
	value := ""
	adjacent := false

	if idx := strings.Index(tok, "="); idx >= 0 {
		name = tok[:idx]
		value = tok[idx+1:]
		adjacent = true
	}

	opt := def.FindOption(name)
	if opt == nil {
		return vclerr.Newf(vclerr.KindInput, vclerr.CodeUnknownOption,
			"unknown option: %s", name)
	}

	s.Consume()
	if adjacent {
		s.Insert(value)
	}

	rec.Increment(opt.ID)

	return p.parseOptionArguments(opt, s, rec, adjacent)
}

// parseShortOption parses a "-abc" token as a cluster of short options.
// Argument-less options increment their counter and the scan continues to
// the next character. The first option that declares arguments takes the
// remainder of the token (if any) as an attached adjacent value and ends
// the scan.
func (p *Parser) parseShortOption(def *grammar.VerbDefinition, s *stream.Stream, rec *record.Record, tok string) error {
	body := tok[1:]
	s.Consume()

	for i := 0; i < len(body); i++ {
		name := "-" + string(body[i])

		opt := def.FindOption(name)
		if opt == nil {
			return vclerr.Newf(vclerr.KindInput, vclerr.CodeUnknownOption,
				"unknown option: %s", name)
		}

		rec.Increment(opt.ID)

		if len(opt.Args) == 0 {
			continue
		}

		remainder := body[i+1:]
		adjacent := remainder != ""
		if adjacent {
			s.Insert(remainder)
		}

		return p.parseOptionArguments(opt, s, rec, adjacent)
	}

	return nil
}

// parseOptionArguments parses an option's operand list in declared order.
// Required operands parse unconditionally. Each optional operand is
// attempted under a snapshot; the first failure rolls back and defaults
// this and every remaining operand.
//
// adjacent is true when the option carried an attached value: the first
// operand is then forced mandatory, and an option without operands
// rejects the attached value outright.
func (p *Parser) parseOptionArguments(opt *grammar.OptionDefinition, s *stream.Stream, rec *record.Record, adjacent bool) error {
	if adjacent && len(opt.Args) == 0 {
		return vclerr.Newf(vclerr.KindInput, vclerr.CodeSuperfluousValue,
			"option %s does not need any argument", opt.DisplayName())
	}

	for i, arg := range opt.Args {
		required := !arg.Optional || (adjacent && i == 0)

		if required {
			value, err := arg.Type.Resolve(s)
			if err != nil {
				return err
			}
			rec.Set(arg.ID, value)
			continue
		}

		s.Snapshot()
		value, err := arg.Type.Resolve(s)
		if err != nil {
			s.Rollback()
			applyDefaults(rec, opt.Args[i:])
			return nil
		}
		s.Commit()

		rec.Set(arg.ID, value)
	}

	return nil
}

// parseSubverb resolves the current token against the verb's children.
// Named sub-verbs match by name or alias; otherwise every unnamed
// sub-verb is tried in declaration order under a snapshot, and on total
// failure the error of the first attempted candidate is surfaced.
func (p *Parser) parseSubverb(def *grammar.VerbDefinition, s *stream.Stream, rec *record.Record, st *state, tok string) error {
	for _, sub := range def.Subverbs {
		if !sub.MatchesToken(tok) {
			continue
		}

		p.logger.Debug("matched subverb", log.Fields{
			"verb":    def.ID,
			"subverb": sub.ID,
			"token":   tok,
		})

		s.Consume()
		subRec := record.New()
		if err := p.parseVerb(sub, s, subRec, st); err != nil {
			return err
		}
		rec.Set(sub.ID, subRec)
		return nil
	}

	return p.trialUnnamedSubverbs(def, s, rec, st, tok)
}

// trialUnnamedSubverbs attempts every unnamed child in declaration order
func (p *Parser) trialUnnamedSubverbs(def *grammar.VerbDefinition, s *stream.Stream, rec *record.Record, st *state, tok string) error {
	if st.trialDepth >= p.maxTrialDepth {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeTrialDepth,
			"unnamed sub-verb nesting in verb %s exceeds depth %d", def.ID, p.maxTrialDepth)
	}

	st.trialDepth++
	defer func() { st.trialDepth-- }()

	var firstErr error
	attempted := false

	for _, sub := range def.Subverbs {
		if !sub.IsUnnamed() {
			continue
		}
		attempted = true

		s.Snapshot()
		subRec := record.New()
		err := p.parseVerb(sub, s, subRec, st)
		if err == nil {
			s.Commit()
			rec.Set(sub.ID, subRec)
			return nil
		}
		s.Rollback()

		p.logger.Debug("subverb trial failed", log.Fields{
			"verb":    def.ID,
			"subverb": sub.ID,
			"error":   err.Error(),
		})

		if firstErr == nil {
			firstErr = err
		}
	}

	if attempted {
		return firstErr
	}

	return vclerr.Newf(vclerr.KindInput, vclerr.CodeUnknownSubcommand,
		"unknown subcommand: %s", tok)
}

// finishVerb runs the defaulting pass once the verb's tokens are
// exhausted or a sub-verb has been dispatched: remaining positionals must
// all be optional and receive their defaults, absent options get a zero
// occurrence counter, and if no sub-verb token was present, the first
// all-optional unnamed sub-verb is filled purely from defaults.
func (p *Parser) finishVerb(def *grammar.VerbDefinition, rec *record.Record, posIndex int, subverbChosen bool) error {
	for _, arg := range def.Positionals[posIndex:] {
		if !arg.Optional {
			return vclerr.Newf(vclerr.KindInput, vclerr.CodeInsufficientArguments,
				"insufficient arguments: missing %s", arg.ID)
		}
	}
	applyDefaults(rec, def.Positionals[posIndex:])

	zeroOptionCounters(def, rec)

	if !subverbChosen && len(def.Subverbs) > 0 {
		fillSubverbDefaults(def, rec, map[*grammar.VerbDefinition]bool{def: true})
	}

	return nil
}

// fillSubverbDefaults recurses into the first unnamed sub-verb whose
// entire positional list is optional and fills it from defaults. A
// sub-verb is never invented to satisfy a required argument the user did
// not supply. The visited set bounds the recursion on cyclic grammars.
func fillSubverbDefaults(def *grammar.VerbDefinition, rec *record.Record, visited map[*grammar.VerbDefinition]bool) {
	for _, sub := range def.Subverbs {
		if !sub.IsUnnamed() || visited[sub] || !allOptional(sub.Positionals) {
			continue
		}
		visited[sub] = true

		subRec := record.New()
		subRec.Set(sub.ID, true)
		applyDefaults(subRec, sub.Positionals)
		zeroOptionCounters(sub, subRec)
		fillSubverbDefaults(sub, subRec, visited)

		rec.Set(sub.ID, subRec)
		return
	}
}

// applyDefaults binds every argument in args to its declared default
func applyDefaults(rec *record.Record, args []*grammar.ArgumentDefinition) {
	for _, arg := range args {
		rec.Set(arg.ID, arg.Default)
	}
}

// zeroOptionCounters binds a zero occurrence counter for every option the
// input never mentioned
func zeroOptionCounters(def *grammar.VerbDefinition, rec *record.Record) {
	for _, opt := range def.Options {
		if !rec.Has(opt.ID) {
			rec.Set(opt.ID, 0)
		}
	}
}

// allOptional reports whether every argument in args is optional
func allOptional(args []*grammar.ArgumentDefinition) bool {
	for _, arg := range args {
		if !arg.Optional {
			return false
		}
	}
	return true
}
