// Package panel renders the session status panel: a tab row with the
// environment (current settings), control (how to change them), and logs
// (recent session log entries) tabs.
package panel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/aislehq/aisle/pkg/backend"
	"github.com/aislehq/aisle/pkg/logs"
)

// Tab names one of the panel surfaces.
type Tab string

const (
	TabEnvironment Tab = "environment"
	TabControl     Tab = "control"
	TabLogs        Tab = "logs"
)

// ParseTab validates a tab name from the panel command's --tab flag.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabEnvironment, TabControl, TabLogs:
		return Tab(s), nil
	}
	return "", fmt.Errorf("panel: unknown tab %q (expected environment, control, or logs)", s)
}

// LogLines is how many log entries the logs tab shows.
const LogLines = 20

var (
	activeTabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("6")).
			Foreground(lipgloss.Color("6")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Foreground(lipgloss.Color("8")).
				Padding(0, 1)

	bodyStyle = lipgloss.NewStyle().PaddingLeft(1)

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	flagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))

	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

// Render draws the panel with the given active tab.
func Render(tab Tab, b *backend.Backend, store *logs.Store, width int) string {
	if width <= 0 {
		width = 80
	}

	var body string
	switch tab {
	case TabControl:
		body = controlView(b)
	case TabLogs:
		body = logsView(store)
	default:
		body = environmentView(b, width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar(tab),
		bodyStyle.Render(body),
	)
}

func tabBar(active Tab) string {
	tabs := []Tab{TabEnvironment, TabControl, TabLogs}

	rendered := make([]string, len(tabs))
	for i, t := range tabs {
		style := inactiveTabStyle
		if t == active {
			style = activeTabStyle
		}
		rendered[i] = style.Render(string(t))
	}

	return lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
}

// environmentView renders the settings sheet as a markdown table, mirroring
// the status sheet the panel has always shown.
func environmentView(b *backend.Backend, width int) string {
	rows := []string{
		"| | |",
		"|-|-|",
		fmt.Sprintf("|**model**|%s|", b.Model()),
		fmt.Sprintf("|**temperature**|%v|", b.Temperature()),
		fmt.Sprintf("|**reproducible**|%t|", b.Reproducible()),
		fmt.Sprintf("|**seed**|%d|", b.Seed()),
	}

	sheet := strings.Join(rows, "\n")

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-4),
	)
	if err != nil {
		return sheet
	}

	out, err := r.Render(sheet)
	if err != nil {
		return sheet
	}

	return strings.TrimRight(out, "\n")
}

// controlView lists each setting with its panel flag and current value.
// The temperature line carries a swatch on the plasma gradient.
func controlView(b *backend.Backend) string {
	swatch := lipgloss.NewStyle().
		Foreground(lipgloss.Color(TemperatureColor(b.Temperature()))).
		Render("██")

	lines := []string{
		fmt.Sprintf("%s  %s  %s", flagStyle.Render("--model <name>"), dimStyle.Render("switch the dialogue model, currently"), b.Model()),
		fmt.Sprintf("%s  %s  %v %s", flagStyle.Render("--temperature <0.0-1.0>"), dimStyle.Render("set the sampling temperature, currently"), b.Temperature(), swatch),
		fmt.Sprintf("%s  %s  %t", flagStyle.Render("--reproducible <bool>"), dimStyle.Render("toggle reproducible replies, currently"), b.Reproducible()),
		fmt.Sprintf("%s  %s  %d", flagStyle.Render("--seed <int>"), dimStyle.Render("set the reproducibility seed, currently"), b.Seed()),
	}

	return strings.Join(lines, "\n")
}

func logsView(store *logs.Store) string {
	entries := store.Tail(LogLines)
	if len(entries) == 0 {
		return dimStyle.Render("(no logs available)")
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, dimStyle.Render(fmt.Sprintf("(displaying the most recent %d records)", LogLines)))

	for _, e := range entries {
		style := infoStyle
		switch e.Level {
		case logs.LevelWarning:
			style = warnStyle
		case logs.LevelError:
			style = errorStyle
		}

		lines = append(lines, fmt.Sprintf("%s %s",
			style.Render(fmt.Sprintf("[%s %s]", e.Level, e.Timestamp())),
			e.Message,
		))
	}

	return strings.Join(lines, "\n")
}
