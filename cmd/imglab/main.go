package main

import (
	"os"

	"imglab-urls/internal/cli"
	"imglab-urls/internal/platform/config"
)

func main() {
	// .env is optional; IMGLAB_* values from the environment still apply.
	_ = config.Load()

	if err := cli.New().Execute(); err != nil {
		os.Exit(1)
	}
}
