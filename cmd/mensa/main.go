// Package main is the entry point for the mensa CLI.
package main

import (
	"os"

	"github.com/jmylchreest/mensa/cmd/mensa/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
