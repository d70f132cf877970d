// Package formatter provides the table and detail output shared by all
// commands.
package formatter

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/modelscout/cli/internal/style"
)

// TableFormatter renders aligned tables with styled headers.
type TableFormatter struct {
	writer  *tabwriter.Writer
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given headers.
func NewTable(headers ...string) *TableFormatter {
	return &TableFormatter{
		writer:  tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0),
		headers: headers,
	}
}

// AddRow appends a row.
func (t *TableFormatter) AddRow(columns ...string) {
	t.rows = append(t.rows, columns)
}

// Render writes the table to stdout.
func (t *TableFormatter) Render() {
	fmt.Fprintln(t.writer, style.TableHeaderStyle.Render(strings.Join(t.headers, "\t")))
	fmt.Fprintln(t.writer, style.CreateDivider(80))
	for _, row := range t.rows {
		fmt.Fprintln(t.writer, strings.Join(row, "\t"))
	}
	t.writer.Flush()
}

// ListOutput frames list command output with a banner.
func ListOutput(title string, count int, tableFunc func()) {
	fmt.Println()
	fmt.Println(style.CreateBanner(fmt.Sprintf("%s (%d)", title, count)))
	fmt.Println()
	tableFunc()
	fmt.Println()
}

// DetailOutput frames get command output with a banner and a metadata
// box. Fields render in the order of keys.
func DetailOutput(title string, keys []string, fields map[string]string) {
	fmt.Println()
	fmt.Println(style.CreateBanner(title))
	fmt.Println()
	fmt.Println(style.CreateMetadataBox(keys, fields))
	fmt.Println()
}

// EmptyListMessage prints a hint when a list command finds nothing.
func EmptyListMessage(resourceType string) {
	fmt.Println(style.CreateHelpBox(fmt.Sprintf("No %s found", resourceType)))
}

// FormatBoolean returns a styled check or cross.
func FormatBoolean(value bool) string {
	if value {
		return style.SuccessStyle.Render("✓")
	}
	return style.DimStyle.Render("✗")
}

// FormatUnixTime renders a unix timestamp, dimmed. Zero renders as N/A.
func FormatUnixTime(ts int64) string {
	if ts == 0 {
		return style.DimStyle.Render("N/A")
	}
	return style.DimStyle.Render(time.Unix(ts, 0).UTC().Format("2006-01-02"))
}

// TruncateString shortens s to maxLen with an ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// StyledName returns a styled display name.
func StyledName(name string) string {
	return style.InfoStyle.Render(name)
}

// StyledValue returns a styled value string.
func StyledValue(value string) string {
	return style.ValueStyle.Render(value)
}

// StyledDim returns a dimmed string.
func StyledDim(value string) string {
	return style.DimStyle.Render(value)
}
