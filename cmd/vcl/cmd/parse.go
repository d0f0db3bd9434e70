package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl"
	"github.com/msto63/vcl/grammar"
	"github.com/msto63/vcl/record"
)

var parseGrammarFile string

var parseCmd = &cobra.Command{
	Use:   "parse --grammar <datei> [eingabe...]",
	Short: "Eingabe gegen eine Grammatik parsen",
	Long: `Parst eine Eingabezeile gegen eine Grammatik-Datei und gibt die
gebundenen Werte aus.

Beispiele:
  vcl parse --grammar mv.yaml mv a.txt b.txt
  vcl parse --grammar svc.toml "svc add --prio=7 demo"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseGrammarFile, "grammar", "g", "", "Grammatik-Datei (YAML oder TOML)")
	parseCmd.MarkFlagRequired("grammar")
}

func runParse(cmd *cobra.Command, args []string) error {
	def, err := grammar.LoadFile(parseGrammarFile)
	if err != nil {
		printError("Grammatik konnte nicht geladen werden", err)
		return err
	}

	engine, err := vcl.NewEngine()
	if err != nil {
		return err
	}

	rec, err := engine.ParseLine(def, strings.Join(args, " "))
	if err != nil {
		printError("Parsen fehlgeschlagen", err)
		return err
	}

	printRecord(rec, "")
	return nil
}

// printRecord prints a record's bindings, recursing into nested records
func printRecord(rec *record.Record, indent string) {
	for _, entry := range rec.Entries() {
		if sub, ok := entry.Value.(*record.Record); ok {
			fmt.Printf("%s%s:\n", indent, entry.ID)
			printRecord(sub, indent+"  ")
			continue
		}
		fmt.Printf("%s%s = %v\n", indent, entry.ID, entry.Value)
	}
}
