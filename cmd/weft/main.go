package main

import (
	"os"

	"github.com/mwarzecha/weft/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
