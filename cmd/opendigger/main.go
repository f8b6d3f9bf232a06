package main

import (
	"os"

	"github.com/X-lab2017/opendigger-cli/cmd/opendigger/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
