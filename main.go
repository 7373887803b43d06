package main

import (
	"os"

	"github.com/internradar/internradar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
