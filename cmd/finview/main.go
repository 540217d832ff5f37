package main

import (
	"os"

	"github.com/finview-dev/finview/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
