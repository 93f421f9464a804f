package main

import (
	"os"

	"simpleui/cmd/simpleui/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
