// Package telemetry wires optional crash reporting. Nothing is sent
// unless the user sets a DSN.
package telemetry

import (
	"os"
	"time"

	"github.com/getsentry/sentry-go"
)

// Initialize sets up crash reporting when MODELSCOUT_SENTRY_DSN is set.
func Initialize(version string) error {
	dsn := os.Getenv("MODELSCOUT_SENTRY_DSN")
	if dsn == "" {
		return nil
	}

	environment := os.Getenv("MODELSCOUT_SENTRY_ENVIRONMENT")
	if environment == "" {
		environment = "production"
	}

	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		Release:          version,
		AttachStacktrace: true,
	})
}

// CaptureError records a fatal CLI error if reporting is enabled.
func CaptureError(err error) {
	if err == nil || sentry.CurrentHub().Client() == nil {
		return
	}
	sentry.CaptureException(err)
}

// Flush waits for pending events before the process exits.
func Flush(timeout time.Duration) {
	if sentry.CurrentHub().Client() != nil {
		sentry.Flush(timeout)
	}
}
