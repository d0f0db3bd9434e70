package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/vcl/grammar"
)

var checkCmd = &cobra.Command{
	Use:   "check <grammatik-datei>",
	Short: "Grammatik-Datei validieren",
	Long: `Lädt eine Grammatik-Datei (YAML oder TOML) und prüft sie auf
Definitionsfehler: fehlende Defaults, Pflichtargumente nach optionalen,
doppelte oder ungültige Optionsnamen.

Beispiele:
  vcl check grammatik.yaml
  vcl check service.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	def, err := grammar.LoadFile(args[0])
	if err != nil {
		printError("Grammatik ungültig", err)
		return err
	}

	fmt.Printf("OK: Grammatik %s ist gültig (%d Optionen, %d Sub-Verben)\n",
		def.ID, len(def.Options), len(def.Subverbs))
	return nil
}
