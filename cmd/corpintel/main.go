package main

import (
	"os"

	"github.com/corpintel/corpintel/cmd/corpintel/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
