// Package main is the entry point for the eeris CLI.
package main

import (
	"os"

	"github.com/eeris-project/eeris-cli/cmd/eeris/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
