package main

import (
	"fmt"
	"os"

	"webdrill/presentation/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	termInterface, err := terminal.NewTerminalInterface()
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer termInterface.Close()

	return termInterface.Run()
}
