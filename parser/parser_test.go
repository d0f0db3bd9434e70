// File: parser_test.go
// Title: Parse Engine Unit Tests
// Description: Tests for option parsing, adjacency, short clusters,
//              positional and sub-verb resolution, trial parsing, and
//              default propagation.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.1.0: Initial test suite

package parser

import (
	"testing"

	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/grammar"
	"github.com/msto63/vcl/record"
	"github.com/msto63/vcl/resolver"
)

func newParser() *Parser {
	return New(Options{})
}

func mustParse(t *testing.T, def *grammar.VerbDefinition, tokens []string) *record.Record {
	t.Helper()

	rec, err := newParser().Parse(def, tokens)
	if err != nil {
		t.Fatalf("Expected parse to succeed, got %v", err)
	}
	return rec
}

func TestParseVerbWithPositionals(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "mv",
		Name: "mv",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "src", Type: resolver.String()},
			{ID: "dst", Type: resolver.String()},
		},
	}

	rec := mustParse(t, def, []string{"mv", "a.txt", "b.txt"})

	if v, _ := rec.GetString("src"); v != "a.txt" {
		t.Errorf("Expected src=a.txt, got %v", v)
	}
	if v, _ := rec.GetString("dst"); v != "b.txt" {
		t.Errorf("Expected dst=b.txt, got %v", v)
	}
	if v, _ := rec.GetBool("mv"); !v {
		t.Error("Expected verb to bind its own id to true")
	}
}

func TestParseWithoutLeadingVerbName(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "mv",
		Name: "mv",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "src", Type: resolver.String()},
			{ID: "dst", Type: resolver.String()},
		},
	}

	// Callers may strip the command name before parsing
	rec := mustParse(t, def, []string{"a.txt", "b.txt"})

	if v, _ := rec.GetString("src"); v != "a.txt" {
		t.Errorf("Expected src=a.txt, got %v", v)
	}
}

func TestShortOptionCluster(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Options: []*grammar.OptionDefinition{
			{ID: "count", Names: []string{"--count", "-c"}},
		},
	}

	rec := mustParse(t, def, []string{"-ccc"})

	if got := rec.Count("count"); got != 3 {
		t.Errorf("Expected count=3, got %d", got)
	}
}

func TestShortClusterLaw(t *testing.T) {
	newDef := func() *grammar.VerbDefinition {
		return &grammar.VerbDefinition{
			ID:   "cmd",
			Name: "cmd",
			Options: []*grammar.OptionDefinition{
				{ID: "a", Names: []string{"-a"}},
				{ID: "b", Names: []string{"-b"}},
				{ID: "c", Names: []string{"-c"}, Args: []*grammar.ArgumentDefinition{
					{ID: "cval", Type: resolver.String()},
				}},
			},
		}
	}

	clustered := mustParse(t, newDef(), []string{"-abc", "X"})
	separate := mustParse(t, newDef(), []string{"-a", "-b", "-c", "X"})
	attached := mustParse(t, newDef(), []string{"-abcX"})

	for _, rec := range []*record.Record{clustered, separate, attached} {
		if rec.Count("a") != 1 || rec.Count("b") != 1 || rec.Count("c") != 1 {
			t.Errorf("Expected all three options counted once, got %s", rec)
		}
		if v, _ := rec.GetString("cval"); v != "X" {
			t.Errorf("Expected cval=X, got %v", v)
		}
	}
}

func TestShortClusterStopsAtArgumentTakingOption(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Options: []*grammar.OptionDefinition{
			{ID: "out", Names: []string{"-o"}, Args: []*grammar.ArgumentDefinition{
				{ID: "file", Type: resolver.String()},
			}},
			{ID: "v", Names: []string{"-v"}},
		},
	}

	// -ov takes "v" as the attached value, not as a second option
	rec := mustParse(t, def, []string{"-ov"})

	if v, _ := rec.GetString("file"); v != "v" {
		t.Errorf("Expected remainder as attached value, got %v", v)
	}
	if rec.Count("v") != 0 {
		t.Errorf("Expected -v not to be recognized, got count %d", rec.Count("v"))
	}
}

func TestAdjacencyLaw(t *testing.T) {
	newDef := func() *grammar.VerbDefinition {
		return &grammar.VerbDefinition{
			ID:   "cmd",
			Name: "cmd",
			Options: []*grammar.OptionDefinition{
				{ID: "level", Names: []string{"--level", "-l"}, Args: []*grammar.ArgumentDefinition{
					{ID: "level", Type: resolver.Int()},
				}},
			},
		}
	}

	joined := mustParse(t, newDef(), []string{"--level=5"})
	split := mustParse(t, newDef(), []string{"--level", "5"})

	for _, rec := range []*record.Record{joined, split} {
		if v, ok := rec.GetInt("level"); !ok || v != 5 {
			t.Errorf("Expected level=5, got %v", rec)
		}
	}
}

func TestOptionMissingRequiredArgument(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Options: []*grammar.OptionDefinition{
			{ID: "level", Names: []string{"--level", "-l"}, Args: []*grammar.ArgumentDefinition{
				{ID: "level", Type: resolver.Int()},
			}},
		},
	}

	_, err := newParser().Parse(def, []string{"--level"})
	if err == nil {
		t.Fatal("Expected error for missing option argument")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeInsufficientArguments {
		t.Errorf("Expected insufficient arguments, got %s (%v)", got, err)
	}
}

func TestAdjacencyForcesOptionalArgument(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Options: []*grammar.OptionDefinition{
			{ID: "level", Names: []string{"--level"}, Args: []*grammar.ArgumentDefinition{
				{ID: "level", Type: resolver.Int(), Optional: true, Default: int64(1)},
			}},
		},
	}

	// Bare option falls back to the default
	rec := mustParse(t, def, []string{"--level"})
	if v, _ := rec.GetInt("level"); v != 1 {
		t.Errorf("Expected default level=1, got %v", v)
	}

	// Attached value forces the first argument mandatory
	_, err := newParser().Parse(def, []string{"--level=high"})
	if err == nil {
		t.Fatal("Expected attached non-integer value to fail hard")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeInvalidValue {
		t.Errorf("Expected invalid value, got %s (%v)", got, err)
	}
}

func TestAdjacentValueOnArgumentlessOption(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Options: []*grammar.OptionDefinition{
			{ID: "verbose", Names: []string{"--verbose"}},
		},
	}

	_, err := newParser().Parse(def, []string{"--verbose=yes"})
	if err == nil {
		t.Fatal("Expected error for attached value on argument-less option")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeSuperfluousValue {
		t.Errorf("Expected superfluous value, got %s (%v)", got, err)
	}
}

func TestUnknownOption(t *testing.T) {
	def := &grammar.VerbDefinition{ID: "cmd", Name: "cmd"}

	_, err := newParser().Parse(def, []string{"--nope"})
	if err == nil {
		t.Fatal("Expected error for unknown option")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeUnknownOption {
		t.Errorf("Expected unknown option, got %s (%v)", got, err)
	}
	if !vclerr.IsInput(err) {
		t.Errorf("Expected input kind, got %s", vclerr.KindOf(err))
	}
}

func TestOptionalOptionArgumentsBacktrack(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "target", Type: resolver.String()},
		},
		Options: []*grammar.OptionDefinition{
			{ID: "retry", Names: []string{"--retry"}, Args: []*grammar.ArgumentDefinition{
				{ID: "attempts", Type: resolver.Int(), Optional: true, Default: int64(3)},
				{ID: "delay", Type: resolver.Int(), Optional: true, Default: int64(10)},
			}},
		},
	}

	// The non-integer token is rolled back to the positional slot and
	// both operands default
	rec := mustParse(t, def, []string{"--retry", "host1"})

	if v, _ := rec.GetInt("attempts"); v != 3 {
		t.Errorf("Expected attempts=3 by default, got %v", v)
	}
	if v, _ := rec.GetInt("delay"); v != 10 {
		t.Errorf("Expected delay=10 by default, got %v", v)
	}
	if v, _ := rec.GetString("target"); v != "host1" {
		t.Errorf("Expected rolled-back token as positional, got %v", v)
	}

	// A leading integer binds the first operand, the rest defaults
	rec = mustParse(t, def, []string{"--retry", "5", "host1"})
	if v, _ := rec.GetInt("attempts"); v != 5 {
		t.Errorf("Expected attempts=5, got %v", v)
	}
	if v, _ := rec.GetInt("delay"); v != 10 {
		t.Errorf("Expected delay=10 by default, got %v", v)
	}
}

func TestDoubleDashDisablesOptions(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "rm",
		Name: "rm",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "target", Type: resolver.String()},
		},
		Options: []*grammar.OptionDefinition{
			{ID: "force", Names: []string{"-f"}},
		},
	}

	rec := mustParse(t, def, []string{"rm", "--", "-f"})

	if v, _ := rec.GetString("target"); v != "-f" {
		t.Errorf("Expected -f as positional after --, got %v", v)
	}
	if rec.Count("force") != 0 {
		t.Errorf("Expected force not recognized after --, got %d", rec.Count("force"))
	}
}

func TestTooManyArguments(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "one", Type: resolver.String()},
		},
	}

	_, err := newParser().Parse(def, []string{"cmd", "a", "b"})
	if err == nil {
		t.Fatal("Expected error for surplus token")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeTooManyArguments {
		t.Errorf("Expected too many arguments, got %s (%v)", got, err)
	}
}

func TestMissingRequiredPositional(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "mv",
		Name: "mv",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "src", Type: resolver.String()},
			{ID: "dst", Type: resolver.String()},
		},
	}

	_, err := newParser().Parse(def, []string{"mv", "a.txt"})
	if err == nil {
		t.Fatal("Expected error for missing positional")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeInsufficientArguments {
		t.Errorf("Expected insufficient arguments, got %s (%v)", got, err)
	}
}

func TestNamedSubverb(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "svc",
		Name: "svc",
		Subverbs: []*grammar.VerbDefinition{
			{ID: "add", Name: "add", Aliases: []string{"a"}, Positionals: []*grammar.ArgumentDefinition{
				{ID: "name", Type: resolver.String()},
			}},
		},
	}

	for _, tokens := range [][]string{
		{"svc", "add", "demo"},
		{"svc", "a", "demo"},
	} {
		rec := mustParse(t, def, tokens)

		sub, ok := rec.GetRecord("add")
		if !ok {
			t.Fatalf("Expected nested record for %v", tokens)
		}
		if v, _ := sub.GetString("name"); v != "demo" {
			t.Errorf("Expected name=demo, got %v", v)
		}
		if v, _ := sub.GetBool("add"); !v {
			t.Error("Expected subverb to bind its own id to true")
		}
	}
}

func TestUnnamedSubverbTrial(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "calc",
		Name: "calc",
		Subverbs: []*grammar.VerbDefinition{
			{ID: "add", Name: "add"},
			{ID: "value", Positionals: []*grammar.ArgumentDefinition{
				{ID: "x", Type: resolver.Float()},
			}},
		},
	}

	rec := mustParse(t, def, []string{"calc", "3.14"})

	sub, ok := rec.GetRecord("value")
	if !ok {
		t.Fatal("Expected unnamed subverb to match by trial")
	}
	if v, _ := sub.GetFloat("x"); v != 3.14 {
		t.Errorf("Expected x=3.14, got %v", v)
	}
}

func TestUnnamedSubverbTrialSurfacesFirstError(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "calc",
		Name: "calc",
		Subverbs: []*grammar.VerbDefinition{
			{ID: "add", Name: "add"},
			{ID: "value", Positionals: []*grammar.ArgumentDefinition{
				{ID: "x", Type: resolver.Float()},
			}},
		},
	}

	_, err := newParser().Parse(def, []string{"calc", "nope"})
	if err == nil {
		t.Fatal("Expected trial failure to surface")
	}
	// The float-parse error of the unnamed candidate wins over a generic
	// unknown-subcommand error
	if got := vclerr.CodeOf(err); got != vclerr.CodeInvalidValue {
		t.Errorf("Expected the trial's own error, got %s (%v)", got, err)
	}
}

func TestUnnamedSubverbLaw(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "q",
		Name: "q",
		Subverbs: []*grammar.VerbDefinition{
			{ID: "byNumber", Positionals: []*grammar.ArgumentDefinition{
				{ID: "n", Type: resolver.Int()},
			}},
			{ID: "byName", Positionals: []*grammar.ArgumentDefinition{
				{ID: "name", Type: resolver.String()},
			}},
		},
	}

	// First candidate fails on the non-integer token, second succeeds
	rec := mustParse(t, def, []string{"q", "demo"})

	if _, ok := rec.GetRecord("byNumber"); ok {
		t.Error("Expected failed candidate not to bind")
	}
	sub, ok := rec.GetRecord("byName")
	if !ok {
		t.Fatal("Expected second candidate to win")
	}
	if v, _ := sub.GetString("name"); v != "demo" {
		t.Errorf("Expected name=demo, got %v", v)
	}
}

func TestUnknownSubcommand(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "svc",
		Name: "svc",
		Subverbs: []*grammar.VerbDefinition{
			{ID: "add", Name: "add"},
		},
	}

	_, err := newParser().Parse(def, []string{"svc", "nope"})
	if err == nil {
		t.Fatal("Expected unknown subcommand error")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeUnknownSubcommand {
		t.Errorf("Expected unknown subcommand, got %s (%v)", got, err)
	}
}

func TestDefaultPropagation(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cfg",
		Name: "cfg",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "x", Type: resolver.Int(), Optional: true, Default: int64(0)},
			{ID: "y", Type: resolver.Int(), Optional: true, Default: int64(1)},
		},
		Options: []*grammar.OptionDefinition{
			{ID: "verbose", Names: []string{"-v"}},
		},
		Subverbs: []*grammar.VerbDefinition{
			{ID: "scope", Positionals: []*grammar.ArgumentDefinition{
				{ID: "depth", Type: resolver.Int(), Optional: true, Default: int64(2)},
			}},
		},
	}

	rec := mustParse(t, def, []string{})

	if v, _ := rec.GetInt("x"); v != 0 {
		t.Errorf("Expected x=0 by default, got %v", v)
	}
	if v, _ := rec.GetInt("y"); v != 1 {
		t.Errorf("Expected y=1 by default, got %v", v)
	}
	if rec.Count("verbose") != 0 || !rec.Has("verbose") {
		t.Error("Expected absent option bound to a zero counter")
	}

	sub, ok := rec.GetRecord("scope")
	if !ok {
		t.Fatal("Expected all-optional unnamed subverb filled from defaults")
	}
	if v, _ := sub.GetInt("depth"); v != 2 {
		t.Errorf("Expected depth=2 by default, got %v", v)
	}
}

func TestDefaultsNeverInventRequiredSubverb(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cfg",
		Name: "cfg",
		Subverbs: []*grammar.VerbDefinition{
			{ID: "scope", Positionals: []*grammar.ArgumentDefinition{
				{ID: "depth", Type: resolver.Int()},
			}},
		},
	}

	rec := mustParse(t, def, []string{})

	if _, ok := rec.GetRecord("scope"); ok {
		t.Error("Expected subverb with required positional not to be default-filled")
	}
}

func TestGrammarOrderLaw(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "bad",
		Name: "bad",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "mode", Type: resolver.String(), Optional: true, Default: "fast"},
			{ID: "dst", Type: resolver.String()},
		},
	}

	_, err := newParser().Parse(def, []string{"bad", "a", "b"})
	if err == nil {
		t.Fatal("Expected grammar defect to be rejected")
	}
	if !vclerr.IsGrammar(err) {
		t.Errorf("Expected grammar kind before any token is consumed, got %s", vclerr.KindOf(err))
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeArgumentOrder {
		t.Errorf("Expected argument order defect, got %s (%v)", got, err)
	}
}

func TestCyclicUnnamedGrammarTerminates(t *testing.T) {
	a := &grammar.VerbDefinition{ID: "a"}
	b := &grammar.VerbDefinition{ID: "b"}
	a.Subverbs = []*grammar.VerbDefinition{b}
	b.Subverbs = []*grammar.VerbDefinition{a}

	root := &grammar.VerbDefinition{
		ID:       "root",
		Name:     "root",
		Subverbs: []*grammar.VerbDefinition{a},
	}

	// The surplus token can never be consumed; the trial depth bound
	// stops the mutual recursion
	_, err := newParser().Parse(root, []string{"root", "x"})
	if err == nil {
		t.Fatal("Expected cyclic unnamed grammar to fail, not loop")
	}
	if got := vclerr.CodeOf(err); got != vclerr.CodeTrialDepth {
		t.Errorf("Expected trial depth bound, got %s (%v)", got, err)
	}
}

func TestCyclicGrammarDefaultFillTerminates(t *testing.T) {
	a := &grammar.VerbDefinition{ID: "a"}
	b := &grammar.VerbDefinition{ID: "b"}
	a.Subverbs = []*grammar.VerbDefinition{b}
	b.Subverbs = []*grammar.VerbDefinition{a}

	root := &grammar.VerbDefinition{
		ID:       "root",
		Name:     "root",
		Subverbs: []*grammar.VerbDefinition{a},
	}

	// Empty input exercises only the default-filling recursion
	rec := mustParse(t, root, []string{})

	sub, ok := rec.GetRecord("a")
	if !ok {
		t.Fatal("Expected first unnamed subverb filled from defaults")
	}
	if _, ok := sub.GetRecord("b"); !ok {
		t.Error("Expected nested default fill one level down")
	}
}

func TestMixedOptionsAndPositionals(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cp",
		Name: "cp",
		Positionals: []*grammar.ArgumentDefinition{
			{ID: "src", Type: resolver.String()},
			{ID: "dst", Type: resolver.String()},
		},
		Options: []*grammar.OptionDefinition{
			{ID: "force", Names: []string{"--force", "-f"}},
			{ID: "mode", Names: []string{"--mode", "-m"}, Args: []*grammar.ArgumentDefinition{
				{ID: "mode", Type: resolver.Enum("fast", "safe")},
			}},
		},
	}

	rec := mustParse(t, def, []string{"cp", "-f", "a.txt", "--mode=safe", "b.txt"})

	if v, _ := rec.GetString("src"); v != "a.txt" {
		t.Errorf("Expected src=a.txt, got %v", v)
	}
	if v, _ := rec.GetString("dst"); v != "b.txt" {
		t.Errorf("Expected dst=b.txt, got %v", v)
	}
	if rec.Count("force") != 1 {
		t.Errorf("Expected force counted once, got %d", rec.Count("force"))
	}
	if v, _ := rec.GetString("mode"); v != "safe" {
		t.Errorf("Expected mode=safe, got %v", v)
	}
}

func TestOptionsInsideSubverb(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "svc",
		Name: "svc",
		Subverbs: []*grammar.VerbDefinition{
			{
				ID:   "add",
				Name: "add",
				Positionals: []*grammar.ArgumentDefinition{
					{ID: "name", Type: resolver.String()},
				},
				Options: []*grammar.OptionDefinition{
					{ID: "prio", Names: []string{"--prio"}, Args: []*grammar.ArgumentDefinition{
						{ID: "prio", Type: resolver.Int()},
					}},
				},
			},
		},
	}

	rec := mustParse(t, def, []string{"svc", "add", "--prio=7", "demo"})

	sub, ok := rec.GetRecord("add")
	if !ok {
		t.Fatal("Expected nested record")
	}
	if v, _ := sub.GetInt("prio"); v != 7 {
		t.Errorf("Expected prio=7, got %v", v)
	}
	if v, _ := sub.GetString("name"); v != "demo" {
		t.Errorf("Expected name=demo, got %v", v)
	}
}

func TestRepeatedOptionWithArgumentKeepsLastValue(t *testing.T) {
	def := &grammar.VerbDefinition{
		ID:   "cmd",
		Name: "cmd",
		Options: []*grammar.OptionDefinition{
			{ID: "level", Names: []string{"-l"}, Args: []*grammar.ArgumentDefinition{
				{ID: "value", Type: resolver.Int()},
			}},
		},
	}

	rec := mustParse(t, def, []string{"-l", "1", "-l", "2"})

	if got := rec.Count("level"); got != 2 {
		t.Errorf("Expected two occurrences, got %d", got)
	}
	if v, _ := rec.GetInt("value"); v != 2 {
		t.Errorf("Expected last value to win, got %v", v)
	}
}
