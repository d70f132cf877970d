package main

import (
	"fmt"
	"os"
	"time"

	"github.com/modelscout/cli/internal/cli"
	"github.com/modelscout/cli/internal/config"
	"github.com/modelscout/cli/internal/errors"
	"github.com/modelscout/cli/internal/telemetry"
	"github.com/modelscout/cli/internal/version"
)

// Overridden by ldflags during release builds.
var (
	buildCommit = "unknown"
	buildDate   = "unknown"
)

func main() {
	version.SetBuildInfo(buildCommit, buildDate)

	if err := telemetry.Initialize(version.Version); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: crash reporting disabled: %v\n", err)
	}
	defer telemetry.Flush(2 * time.Second)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		os.Exit(errors.ExitCodeConfig)
	}

	if err := cli.Execute(cfg); err != nil {
		telemetry.CaptureError(err)
		fmt.Fprintln(os.Stderr, errors.FormatSimple(err))
		telemetry.Flush(2 * time.Second)
		os.Exit(errors.ExitCodeFromError(err))
	}
}
