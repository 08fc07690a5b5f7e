package main

import (
	"os"

	"github.com/tastyrecipes/tastyrecipes/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
