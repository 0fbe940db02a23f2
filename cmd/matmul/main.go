package main

import (
	"os"

	"github.com/katalvlaran/matmul/cmd/matmul/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
