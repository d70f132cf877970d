package output

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner shows progress for a remote call. In CI mode it degrades to
// plain status lines.
type Spinner struct {
	spinner *spinner.Spinner
	mode    OutputMode
	message string
	writer  io.Writer
}

// NewSpinner creates a spinner with the given message.
func NewSpinner(message string, mode OutputMode) *Spinner {
	s := &Spinner{
		mode:    mode,
		message: message,
		writer:  os.Stderr,
	}

	if mode == OutputModeInteractive {
		s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.spinner.Suffix = " " + message
		s.spinner.Writer = s.writer
		s.spinner.Color("blue", "bold")
	}

	return s
}

// Start starts the spinner, or prints the message once in CI mode.
func (s *Spinner) Start() {
	if s.mode == OutputModeInteractive && s.spinner != nil {
		s.spinner.Start()
	} else {
		fmt.Fprintf(s.writer, "%s...\n", s.message)
	}
}

// Stop stops the spinner.
func (s *Spinner) Stop() {
	if s.mode == OutputModeInteractive && s.spinner != nil {
		s.spinner.Stop()
	}
}

// Success stops the spinner and prints a success line.
func (s *Spinner) Success(message string) {
	s.Stop()
	Successf(s.writer, "%s", message)
}

// Fail stops the spinner and prints a failure line.
func (s *Spinner) Fail(message string) {
	s.Stop()
	Errorf(s.writer, "%s", message)
}
