package main

import (
	"os"

	"github.com/jmgilman/go/pathfs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
