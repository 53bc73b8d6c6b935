package main

import (
	"os"

	"github.com/projstack/projgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
