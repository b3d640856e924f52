package main

import (
	"os"

	"github.com/partwatch/partwatch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
