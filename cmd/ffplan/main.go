package main

import (
	"os"

	"github.com/ffplan/freedom-planner/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
