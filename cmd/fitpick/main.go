package main

import (
	"os"

	"fitpick/cmd/fitpick/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
