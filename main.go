package main

import (
	"os"

	"github.com/pillaihoc/phoccy/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
