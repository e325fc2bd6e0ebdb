package main

import (
	"os"

	"github.com/seriv/go-xp-dashboard/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
