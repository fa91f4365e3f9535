package main

import (
	"os"

	"github.com/presstools/core/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
