package main

import (
	"os"

	"github.com/abhilash/crammer/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
