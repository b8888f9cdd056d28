package main

import (
	"os"

	"github.com/petrelhq/petrel/internal/commands"
)

func main() {
	os.Exit(commands.Execute())
}
