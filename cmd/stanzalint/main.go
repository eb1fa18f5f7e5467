package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/danmuck/openlink/internal/config"
	"github.com/danmuck/openlink/internal/logging"
)

func main() {
	path := flag.String("config", "cmd/stanzalint/stanzalint.toml", "lint config path")
	format := flag.String("format", "", "output format override: text|json")
	flag.Parse()

	logging.ConfigureRuntime()

	cfg, err := config.LoadLintConfig(*path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.DefaultLintConfig(), nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "stanzalint: %v\n", err)
		os.Exit(2)
	}
	if *format != "" {
		cfg.Format = *format
		if err := config.ValidateLintConfig(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "stanzalint: %v\n", err)
			os.Exit(2)
		}
	}
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: stanzalint [-config path] [-format text|json] file.xml...")
		os.Exit(2)
	}

	failed, err := newLinter(cfg).run(os.Stdout, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "stanzalint: %v\n", err)
		os.Exit(2)
	}
	if failed {
		os.Exit(1)
	}
}
