package main

import (
	"os"

	"github.com/tinkerlab/tinkeralpha/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
