package main

import (
	"os"

	"github.com/katalvlaran/suffixkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommandeer().Execute(); err != nil {
		os.Exit(1)
	}
}
