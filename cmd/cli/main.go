// Package main is the entry point for the tco CLI.
package main

import (
	"os"

	"tco-calculator/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
