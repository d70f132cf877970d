// Package output handles progress indication and status lines, adapting
// to interactive terminals and CI environments.
package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// OutputMode represents the output style.
type OutputMode int

const (
	// OutputModeInteractive shows spinners and styled status lines.
	OutputModeInteractive OutputMode = iota
	// OutputModeCI shows plain text, no spinners.
	OutputModeCI
)

// DetectMode picks the output mode from the environment and TTY status.
func DetectMode() OutputMode {
	if IsCI() {
		return OutputModeCI
	}
	return OutputModeInteractive
}

// IsCI detects CI environments via common env vars and a non-TTY stdout.
func IsCI() bool {
	ciEnvVars := []string{
		"CI",
		"CONTINUOUS_INTEGRATION",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"CIRCLECI",
		"JENKINS_URL",
		"BUILDKITE",
		"TRAVIS",
		"TEAMCITY_VERSION",
		"DRONE",
	}

	for _, envVar := range ciEnvVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}

	return !isatty.IsTerminal(os.Stdout.Fd())
}
