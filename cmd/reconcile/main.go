package main

import (
	"os"

	"github.com/reconcile-dev/reconcile/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
