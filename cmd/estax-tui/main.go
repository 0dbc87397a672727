package main

import (
	"fmt"
	"os"

	"github.com/asesorlab/estax/internal/config"
	"github.com/asesorlab/estax/internal/tui"
)

func main() {
	// Optional rate-file argument; defaults to the built-in tables.
	ratesFile := ""
	if len(os.Args) > 1 {
		ratesFile = os.Args[1]
	}

	engine, err := config.NewEngineFromFile(ratesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rates: %v\n", err)
		os.Exit(1)
	}

	if err := tui.Run(engine); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
