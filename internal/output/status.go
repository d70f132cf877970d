package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
)

// Successf writes a green check-marked status line.
func Successf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successColor.Sprint("✓"), fmt.Sprintf(format, args...))
}

// Errorf writes a red cross-marked status line.
func Errorf(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", errorColor.Sprint("✗"), fmt.Sprintf(format, args...))
}
