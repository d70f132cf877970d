package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#93C5FD"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E5E7EB"))

	InfoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60A5FA"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#10B981"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BFDBFE")).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2563EB"))

	metadataBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#6B7280")).
				Padding(0, 2)

	metadataKeyStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#9CA3AF"))

	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#60A5FA")).
			Foreground(lipgloss.Color("#93C5FD")).
			Padding(0, 2)

	dividerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))
)

// CreateBanner renders a section banner.
func CreateBanner(title string) string {
	return bannerStyle.Render(title)
}

// CreateMetadataBox renders key/value pairs in a bordered box, keeping
// the given key order.
func CreateMetadataBox(keys []string, items map[string]string) string {
	var lines []string
	for _, key := range keys {
		value, ok := items[key]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s %s",
			metadataKeyStyle.Render(key+":"),
			ValueStyle.Render(value)))
	}
	return metadataBoxStyle.Render(strings.Join(lines, "\n"))
}

// CreateDivider renders a horizontal rule.
func CreateDivider(width int) string {
	return dividerStyle.Render(strings.Repeat("─", width))
}

// CreateHelpBox renders an informational box.
func CreateHelpBox(content string) string {
	return helpBoxStyle.Render(content)
}
