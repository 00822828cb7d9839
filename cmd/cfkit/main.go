package main

import (
	"os"

	"github.com/rodriguescarson/cfkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
