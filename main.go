package main

import (
	"os"

	"github.com/rouu123/world-map-name-distribution/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
