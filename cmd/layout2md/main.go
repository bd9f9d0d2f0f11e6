package main

import (
	"os"

	"github.com/roboco-io/layout2md/internal/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "0.1.0"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
