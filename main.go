package main

import (
	"os"

	"github.com/rustquiz/rustquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
