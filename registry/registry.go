// File: registry.go
// Title: Command Registry and Dispatcher
// Description: Maps leading command names to registered grammars and
//              handlers. Dispatch parses the remaining tokens against the
//              command's grammar and invokes the handler with the result
//              record, after an optional permission check for the acting
//              user.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial registry implementation

package registry

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/grammar"
	"github.com/msto63/vcl/parser"
	"github.com/msto63/vcl/record"
)

// Invocation carries everything a handler needs about one dispatched
// command
type Invocation struct {
	// RequestID uniquely identifies this dispatch for logging and
	// correlation
	RequestID uuid.UUID

	// User is the acting user passed to Dispatch
	User string

	// Command is the id of the resolved command grammar
	Command string

	// Tokens is the full token sequence as received
	Tokens []string

	// Record holds the parsed values
	Record *record.Record

	// Timestamp is the dispatch time
	Timestamp time.Time
}

// Handler executes a successfully parsed command
type Handler func(ctx context.Context, inv *Invocation) error

// PermissionChecker decides whether a user may run a command. A nil
// checker allows everything.
type PermissionChecker interface {
	Allow(ctx context.Context, user, command string) bool
}

// Command pairs a grammar with its handler
type Command struct {
	// Grammar is the command's root verb definition; its name and
	// aliases are the names the command is dispatched under
	Grammar *grammar.VerbDefinition

	// Handler runs after a successful parse
	Handler Handler

	// Description is a short human-readable summary
	Description string
}

// Options configures a Registry
type Options struct {
	Logger      *log.Logger
	Parser      *parser.Parser
	Permissions PermissionChecker
}

// Registry holds registered commands and dispatches token sequences to
// them. Safe for concurrent use.
type Registry struct {
	mutex    sync.RWMutex
	commands map[string]*Command
	byName   map[string]string
	logger   *log.Logger
	parser   *parser.Parser
	perms    PermissionChecker
}

// New creates a registry with the given options
func New(opts Options) *Registry {
	logger := opts.Logger
	if logger == nil {
		logger = log.GetDefault().WithField("component", "registry")
	}

	p := opts.Parser
	if p == nil {
		p = parser.New(parser.Options{Logger: logger})
	}

	return &Registry{
		commands: make(map[string]*Command),
		byName:   make(map[string]string),
		logger:   logger,
		parser:   p,
		perms:    opts.Permissions,
	}
}

// Register validates the command's grammar and adds it under its name
// and aliases
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil || cmd.Grammar == nil {
		return vclerr.New(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"command must carry a grammar")
	}
	if cmd.Handler == nil {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"command %s has no handler", cmd.Grammar.ID)
	}
	if cmd.Grammar.IsUnnamed() {
		return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"command %s needs a name to be dispatchable", cmd.Grammar.ID)
	}

	if err := grammar.Validate(cmd.Grammar); err != nil {
		return err
	}

	names := append([]string{cmd.Grammar.Name}, cmd.Grammar.Aliases...)

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, name := range names {
		if owner, exists := r.byName[name]; exists {
			return vclerr.Newf(vclerr.KindGrammar, vclerr.CodeDuplicateCommand,
				"command name %s is already registered by %s", name, owner)
		}
	}

	r.commands[cmd.Grammar.ID] = cmd
	for _, name := range names {
		r.byName[name] = cmd.Grammar.ID
	}

	r.logger.Info("command registered", log.Fields{
		"command": cmd.Grammar.ID,
		"names":   names,
	})

	return nil
}

// Lookup returns the command registered under the given name or alias
func (r *Registry) Lookup(name string) (*Command, bool) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.commands[id], true
}

// CommandNames returns all registered primary names, sorted
func (r *Registry) CommandNames() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	names := make([]string, 0, len(r.commands))
	for _, cmd := range r.commands {
		names = append(names, cmd.Grammar.Name)
	}
	sort.Strings(names)
	return names
}

// Dispatch resolves the leading token to a registered command, checks
// permissions, parses the tokens against the command's grammar, and
// invokes the handler. The returned invocation carries the parse result
// even when the handler fails.
func (r *Registry) Dispatch(ctx context.Context, user string, tokens []string) (*Invocation, error) {
	if len(tokens) == 0 {
		return nil, vclerr.New(vclerr.KindInput, vclerr.CodeEmptyInput,
			"empty command")
	}

	cmd, ok := r.Lookup(tokens[0])
	if !ok {
		return nil, vclerr.Newf(vclerr.KindInput, vclerr.CodeUnknownCommand,
			"unknown command: %s", tokens[0])
	}

	if r.perms != nil && !r.perms.Allow(ctx, user, cmd.Grammar.ID) {
		return nil, vclerr.Newf(vclerr.KindInput, vclerr.CodePermissionDenied,
			"user %s may not run %s", user, cmd.Grammar.Name)
	}

	rec, err := r.parser.Parse(cmd.Grammar, tokens)
	if err != nil {
		return nil, err
	}

	inv := &Invocation{
		RequestID: uuid.New(),
		User:      user,
		Command:   cmd.Grammar.ID,
		Tokens:    tokens,
		Record:    rec,
		Timestamp: time.Now(),
	}

	r.logger.Debug("dispatching command", log.Fields{
		"request_id": inv.RequestID.String(),
		"command":    inv.Command,
		"user":       user,
	})

	if err := cmd.Handler(ctx, inv); err != nil {
		return inv, err
	}

	return inv, nil
}
