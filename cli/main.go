package main

import (
	"os"

	"github.com/open-grid/grid-cli/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
