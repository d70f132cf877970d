package version

import "fmt"

var (
	// Version is overridden by ldflags during release builds.
	Version = "dev"

	commit = "unknown"
	date   = "unknown"
)

// SetBuildInfo sets the build metadata.
func SetBuildInfo(commitHash, buildDate string) {
	commit = commitHash
	date = buildDate
}

// GetVersion returns the full version string.
func GetVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, date)
}
