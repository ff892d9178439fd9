package main

import (
	"os"

	"github.com/propertypro/ppai/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
