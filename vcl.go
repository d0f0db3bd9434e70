// File: vcl.go
// Title: VCL Main Interface and Engine
// Description: Provides the main VCL engine interface and high-level API
//              for tokenizing, parsing, and dispatching verb commands.
//              Integrates tokenizer, parse engine, and registry
//              components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-15
// Modified: 2025-08-15
//
// Change History:
// - 2025-08-15 v0.1.0: Initial VCL engine implementation

package vcl

import (
	"context"
	"strings"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/core/log"
	"github.com/msto63/vcl/grammar"
	"github.com/msto63/vcl/parser"
	"github.com/msto63/vcl/record"
	"github.com/msto63/vcl/registry"
	"github.com/msto63/vcl/tokenize"
)

// Engine coordinates tokenizing, parsing, and command dispatch
type Engine struct {
	parser   *parser.Parser
	registry *registry.Registry
	logger   *log.Logger
	options  Options
}

// Options configures the VCL engine behavior
type Options struct {
	// Logger for VCL operations (optional, defaults to default logger)
	Logger *log.Logger

	// MaxLineLength limits input command length (default: 4096)
	MaxLineLength int

	// MaxTrialDepth bounds unnamed sub-verb trial nesting
	// (default: parser.DefaultMaxTrialDepth)
	MaxTrialDepth int

	// PermissionChecker validates user permissions for commands
	PermissionChecker registry.PermissionChecker
}

// NewEngine creates a new VCL engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:        log.GetDefault(),
		MaxLineLength: 4096,
		MaxTrialDepth: parser.DefaultMaxTrialDepth,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxLineLength > 0 {
			options.MaxLineLength = provided.MaxLineLength
		}
		if provided.MaxTrialDepth > 0 {
			options.MaxTrialDepth = provided.MaxTrialDepth
		}
		options.PermissionChecker = provided.PermissionChecker
	}

	logger := options.Logger.WithField("component", "vcl-engine")

	p := parser.New(parser.Options{
		Logger:        logger,
		MaxTrialDepth: options.MaxTrialDepth,
	})

	reg := registry.New(registry.Options{
		Logger:      logger,
		Parser:      p,
		Permissions: options.PermissionChecker,
	})

	engine := &Engine{
		parser:   p,
		registry: reg,
		logger:   logger,
		options:  options,
	}

	logger.Info("VCL engine initialized", log.Fields{
		"maxLineLength": options.MaxLineLength,
		"maxTrialDepth": options.MaxTrialDepth,
	})

	return engine, nil
}

// Registry exposes the engine's command registry for registration
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Register adds a command to the engine's registry
func (e *Engine) Register(cmd *registry.Command) error {
	return e.registry.Register(cmd)
}

// Execute tokenizes a raw command line and dispatches it to the matching
// registered command on behalf of user
func (e *Engine) Execute(ctx context.Context, user, line string) (*registry.Invocation, error) {
	if err := e.validateInput(line); err != nil {
		return nil, err
	}

	tokens, err := tokenize.Split(line)
	if err != nil {
		return nil, err
	}

	return e.registry.Dispatch(ctx, user, tokens)
}

// ParseLine tokenizes a raw line and parses it against the given grammar
// without dispatching to a handler
func (e *Engine) ParseLine(def *grammar.VerbDefinition, line string) (*record.Record, error) {
	if err := e.validateInput(line); err != nil {
		return nil, err
	}

	tokens, err := tokenize.Split(line)
	if err != nil {
		return nil, err
	}

	return e.parser.Parse(def, tokens)
}

// Parse parses an already-tokenized sequence against the given grammar
func (e *Engine) Parse(def *grammar.VerbDefinition, tokens []string) (*record.Record, error) {
	return e.parser.Parse(def, tokens)
}

// validateInput checks basic line constraints before tokenizing
func (e *Engine) validateInput(line string) error {
	if strings.TrimSpace(line) == "" {
		return vclerr.New(vclerr.KindInput, vclerr.CodeEmptyInput,
			"empty command")
	}
	if len(line) > e.options.MaxLineLength {
		return vclerr.Newf(vclerr.KindInput, vclerr.CodeInputTooLong,
			"command exceeds maximum length of %d characters", e.options.MaxLineLength)
	}
	return nil
}
