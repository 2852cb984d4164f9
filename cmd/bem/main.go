// Package main provides the bem CLI for composing and linting BEM class names.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// Lint failures were already reported on stdout
		if !errors.Is(err, errIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
