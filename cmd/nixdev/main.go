package main

import (
	"os"

	"github.com/avenk/nixdev-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
