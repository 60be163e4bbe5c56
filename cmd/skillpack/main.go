// Package main is the entry point for the skillpack CLI.
package main

import (
	"fmt"
	"os"

	"github.com/skillpack/skillpack/cmd/skillpack/commands"
	"github.com/skillpack/skillpack/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(os.Stderr, "Suggestion: %s\n", exitErr.Suggestion)
	}

	os.Exit(errors.CodeFor(err))
}
