// Package main is the entry point for the focusgen CLI.
package main

import (
	"os"

	"focusgen/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
