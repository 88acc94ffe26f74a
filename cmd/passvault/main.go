package main

import (
	"os"

	"passvault/cmd/passvault/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
