package main

import (
	"os"

	"github.com/alpforge/alpforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
