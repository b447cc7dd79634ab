package main

import (
	"os"

	"github.com/graeme-hill/mathc-go/cmd/mathc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
