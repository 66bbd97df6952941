package main

import (
	"os"

	"github.com/Protocol-Lattice/sdl/cmd/sdlparse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
