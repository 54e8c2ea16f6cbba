package main

import (
	"os"

	"github.com/arjunk/stemly/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
