package main

import (
	"os"

	"github.com/autocode-dev/autocode/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
