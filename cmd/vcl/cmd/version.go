package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via -ldflags
	Version = "v0.1.0"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Version anzeigen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("vcl %s\n", Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
