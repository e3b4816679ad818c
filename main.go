package main

import (
	"os"

	"github.com/hatchdotlol/cipherpass/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
