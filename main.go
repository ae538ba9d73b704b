package main

import (
	"os"

	"github.com/jpsleep/sleepcheck/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
