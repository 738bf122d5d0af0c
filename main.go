package main

import (
	"os"

	"github.com/Attamusc/standup-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
