package main

import (
	"flag"
	"fmt"
	"os"

	"lifedash/internal/di"
	"lifedash/internal/structures"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging")
	flag.Parse()

	_, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lifedash: %s\n", err)
		os.Exit(1)
	}
}
