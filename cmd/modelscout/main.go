package main

import (
	"fmt"
	"os"

	"github.com/modelscout/cli/internal/cli"
	"github.com/modelscout/cli/internal/config"
	"github.com/modelscout/cli/internal/errors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		os.Exit(errors.ExitCodeConfig)
	}

	if err := cli.Execute(cfg); err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		os.Exit(errors.ExitCodeFromError(err))
	}
}
