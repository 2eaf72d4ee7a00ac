package main

import (
	"os"

	"linediff/cmd/linediff/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
