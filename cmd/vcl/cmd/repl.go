package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/vcl"
	vclerr "github.com/msto63/vcl/core/error"
	"github.com/msto63/vcl/grammar"
)

var replGrammarFile string

var (
	replTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	replPromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	replErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444"))

	replMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)
)

var replCmd = &cobra.Command{
	Use:   "repl --grammar <datei>",
	Short: "Interaktive Parse-Sitzung",
	Long: `Startet eine interaktive Sitzung, in der Eingabezeilen gegen eine
Grammatik-Datei geparst und die gebundenen Werte ausgegeben werden.

Beenden mit "exit", "quit" oder Strg-D.

Beispiel:
  vcl repl --grammar svc.yaml`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVarP(&replGrammarFile, "grammar", "g", "", "Grammatik-Datei (YAML oder TOML)")
	replCmd.MarkFlagRequired("grammar")
}

func runRepl(cmd *cobra.Command, args []string) error {
	def, err := grammar.LoadFile(replGrammarFile)
	if err != nil {
		printError("Grammatik konnte nicht geladen werden", err)
		return err
	}

	engine, err := vcl.NewEngine()
	if err != nil {
		return err
	}

	fmt.Println(replTitleStyle.Render("VCL Parse-Sitzung"))
	fmt.Println(replMutedStyle.Render(
		fmt.Sprintf("Grammatik: %s (%s) - beenden mit exit", def.ID, replGrammarFile)))
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(replPromptStyle.Render(def.ID + "> "))

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case "exit", "quit":
			return nil
		}

		rec, err := engine.ParseLine(def, line)
		if err != nil {
			if vclerr.IsInput(err) {
				fmt.Println(replErrorStyle.Render(err.Error()))
				continue
			}
			printError("Parsen fehlgeschlagen", err)
			continue
		}

		printRecord(rec, "  ")
	}
}
