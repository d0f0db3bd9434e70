package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl/core/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "vcl",
	Short: "VCL - Verb Command Language Werkzeug",
	Long: `VCL ist ein Werkzeug für deklarative Kommando-Grammatiken.

Grammatiken werden als YAML- oder TOML-Dateien beschrieben (Verben,
Sub-Verben, Optionen, Positionsargumente) und gegen Eingabezeilen
geparst.

Befehle:
  check    - Grammatik-Datei validieren
  parse    - Eingabe gegen eine Grammatik parsen
  repl     - Interaktive Parse-Sitzung`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetDefault(log.NewWithConfig(log.Config{Level: log.LevelDebug}))
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
