// File: load.go
// Title: Grammar File Loader
// Description: Loads grammar definitions from YAML or TOML documents with
//              format auto-detection from the file extension. Type names
//              in the document are mapped to the built-in resolvers and
//              the resulting grammar is validated before it is returned.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-13
// Modified: 2025-08-13
//
// Change History:
// - 2025-08-13 v0.1.0: Initial loader with YAML/TOML support

package grammar

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/resolver"
)

// Format represents the grammar file format
type Format int

const (
	// FormatAuto detects the format from the file extension (default)
	FormatAuto Format = iota

	// FormatYAML forces YAML parsing
	FormatYAML

	// FormatTOML forces TOML parsing
	FormatTOML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// File document shapes. Field names mirror the external grammar surface:
// {id, name, aliases, positionals, options, subverbs}.

type fileVerb struct {
	ID          string         `yaml:"id" toml:"id"`
	Name        string         `yaml:"name" toml:"name"`
	Aliases     []string       `yaml:"aliases" toml:"aliases"`
	Positionals []fileArgument `yaml:"positionals" toml:"positionals"`
	Options     []fileOption   `yaml:"options" toml:"options"`
	Subverbs    []fileVerb     `yaml:"subverbs" toml:"subverbs"`
}

type fileOption struct {
	ID    string         `yaml:"id" toml:"id"`
	Names []string       `yaml:"names" toml:"names"`
	Args  []fileArgument `yaml:"args" toml:"args"`
}

type fileArgument struct {
	ID       string      `yaml:"id" toml:"id"`
	Type     string      `yaml:"type" toml:"type"`
	Optional bool        `yaml:"optional" toml:"optional"`
	Default  interface{} `yaml:"default" toml:"default"`

	// Values lists the members of an enum argument
	Values []string `yaml:"values" toml:"values"`

	// Of names the element type of a variadic argument
	Of string `yaml:"of" toml:"of"`
}

// LoadFile loads and validates a grammar definition from a YAML or TOML
// file, detecting the format from the file extension
func LoadFile(path string) (*VerbDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, vclerr.Wrap(err, "reading grammar file")
	}

	format, err := detectFormat(path)
	if err != nil {
		return nil, err
	}

	return Load(data, format)
}

// Load parses and validates a grammar definition from raw document bytes
func Load(data []byte, format Format) (*VerbDefinition, error) {
	var doc fileVerb

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, vclerr.Wrap(vclerr.New(vclerr.KindGrammar,
				vclerr.CodeInvalidDefinition, err.Error()), "parsing grammar document")
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, vclerr.Wrap(vclerr.New(vclerr.KindGrammar,
				vclerr.CodeInvalidDefinition, err.Error()), "parsing grammar document")
		}
	default:
		return nil, vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"grammar format must be yaml or toml, got %s", format)
	}

	def, err := buildVerb(doc)
	if err != nil {
		return nil, err
	}

	if err := Validate(def); err != nil {
		return nil, err
	}

	return def, nil
}

// detectFormat maps a file extension to a Format
func detectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return FormatAuto, vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
			"unsupported grammar file extension: %s", filepath.Ext(path))
	}
}

// buildVerb converts a document verb into a VerbDefinition
func buildVerb(fv fileVerb) (*VerbDefinition, error) {
	def := &VerbDefinition{
		ID:      fv.ID,
		Name:    fv.Name,
		Aliases: fv.Aliases,
	}

	for _, fa := range fv.Positionals {
		arg, err := buildArgument(fa)
		if err != nil {
			return nil, err
		}
		def.Positionals = append(def.Positionals, arg)
	}

	for _, fo := range fv.Options {
		opt := &OptionDefinition{ID: fo.ID, Names: fo.Names}
		for _, fa := range fo.Args {
			arg, err := buildArgument(fa)
			if err != nil {
				return nil, err
			}
			opt.Args = append(opt.Args, arg)
		}
		def.Options = append(def.Options, opt)
	}

	for _, fs := range fv.Subverbs {
		sub, err := buildVerb(fs)
		if err != nil {
			return nil, err
		}
		def.Subverbs = append(def.Subverbs, sub)
	}

	return def, nil
}

// buildArgument converts a document argument into an ArgumentDefinition,
// mapping its type name to a built-in resolver and normalizing the default
// value to the type the resolver produces
func buildArgument(fa fileArgument) (*ArgumentDefinition, error) {
	res, err := resolverFor(fa)
	if err != nil {
		return nil, err
	}

	def, err := normalizeDefault(fa)
	if err != nil {
		return nil, err
	}

	return &ArgumentDefinition{
		ID:       fa.ID,
		Type:     res,
		Optional: fa.Optional,
		Default:  def,
	}, nil
}

// resolverFor maps a document type name to a resolver
func resolverFor(fa fileArgument) (resolver.Resolver, error) {
	switch strings.ToLower(fa.Type) {
	case "", "string":
		return resolver.String(), nil
	case "int", "integer":
		return resolver.Int(), nil
	case "float", "number":
		return resolver.Float(), nil
	case "bool", "boolean":
		return resolver.Bool(), nil
	case "enum":
		if len(fa.Values) == 0 {
			return nil, vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
				"enum argument %s declares no values", fa.ID)
		}
		return resolver.Enum(fa.Values...), nil
	case "variadic":
		inner := fa
		inner.Type = fa.Of
		inner.Of = ""
		if strings.ToLower(inner.Type) == "variadic" {
			return nil, vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
				"variadic argument %s cannot nest another variadic", fa.ID)
		}
		elem, err := resolverFor(inner)
		if err != nil {
			return nil, err
		}
		return resolver.Variadic(elem), nil
	default:
		return nil, vclerr.Newf(vclerr.KindGrammar, vclerr.CodeUnknownType,
			"argument %s has unknown type %q", fa.ID, fa.Type)
	}
}

// normalizeDefault coerces the document default value to the Go type the
// argument's resolver produces, so that defaulted and parsed bindings are
// indistinguishable to the caller
func normalizeDefault(fa fileArgument) (interface{}, error) {
	if fa.Default == nil {
		return nil, nil
	}

	switch strings.ToLower(fa.Type) {
	case "int", "integer":
		switch v := fa.Default.(type) {
		case int:
			return int64(v), nil
		case int64:
			return v, nil
		}
	case "float", "number":
		switch v := fa.Default.(type) {
		case int:
			return float64(v), nil
		case int64:
			return float64(v), nil
		case float64:
			return v, nil
		}
	case "bool", "boolean":
		if v, ok := fa.Default.(bool); ok {
			return v, nil
		}
	case "", "string", "enum":
		if v, ok := fa.Default.(string); ok {
			return v, nil
		}
	default:
		// Variadic and host-defined types keep the document value as-is
		return fa.Default, nil
	}

	return nil, vclerr.Newf(vclerr.KindGrammar, vclerr.CodeInvalidDefinition,
		"default for argument %s does not match its type %q", fa.ID, fa.Type)
}
