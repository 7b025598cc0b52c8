package main

import (
	"os"

	"github.com/kgale/skillvet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
