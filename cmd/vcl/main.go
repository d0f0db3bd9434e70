package main

import (
	"os"

	"github.com/msto63/vcl/cmd/vcl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
