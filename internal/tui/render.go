package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorYellow)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(colorCyan)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)
)

// renderMain renders the table view
func (m Model) renderMain() string {
	table := m.renderTable(m.pageSize())

	tableBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - 2).
		Height(m.height - 3). // Borders take 2, status bar takes 1
		Render(table)

	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(
		lipgloss.Left,
		tableBox,
		statusBar,
	)
}

// renderTable renders the title, the column header, and the visible row
// window.
func (m Model) renderTable(pageSize int) string {
	var lines []string

	// Title
	title := styleTitle.Render(m.feed.Title)
	if !m.fetchedAt.IsZero() {
		title += styleSubtle.Render(fmt.Sprintf("  fetched %s", m.fetchedAt.Format("15:04:05")))
	}
	if m.loading {
		title += styleSubtle.Render("  fetching...")
	}
	lines = append(lines, title)
	lines = append(lines, "")

	// Column header
	lines = append(lines, styleHeader.Render(m.renderCells(m.layout.Names())))

	// Row window
	window, offset := m.table.Window(pageSize)
	selected := m.table.SelectedIndex()
	for i, row := range window {
		line := m.renderCells(row)
		if offset+i == selected {
			line = styleSelected.Render(line)
		}
		lines = append(lines, line)
	}

	// Footer - show position
	lines = append(lines, "")
	total := m.table.Len()
	switch {
	case total > 0:
		position := "-"
		if selected >= 0 {
			position = fmt.Sprintf("%d", selected+1)
		}
		footer := fmt.Sprintf("[%s/%d]", position, total)
		if query := m.table.Filter(); query != "" {
			footer += fmt.Sprintf("  filter %q matches %d of %d", query, total, m.table.TotalLen())
		}
		lines = append(lines, styleSubtle.Render(footer))
	case m.table.Filter() != "":
		lines = append(lines, styleSubtle.Render(fmt.Sprintf("No rows match %q", m.table.Filter())))
	default:
		lines = append(lines, styleSubtle.Render("No rows"))
	}

	content := strings.Join(lines, "\n")
	return lipgloss.NewStyle().
		Padding(0, 1).
		Render(content)
}

// renderCells lays one row out against the column widths. Short rows
// render their missing trailing cells empty.
func (m Model) renderCells(values []string) string {
	cells := make([]string, len(m.layout))
	for i, col := range m.layout {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		cells[i] = fmt.Sprintf("%-*s", col.Width, truncateCell(value, col.Width))
	}
	return strings.Join(cells, " ")
}

// truncateCell shortens a value to fit its column
func truncateCell(value string, width int) string {
	if len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

// renderStatusBar renders the status bar at the bottom
func (m Model) renderStatusBar() string {
	// Left side - active feed
	left := fmt.Sprintf("Feed: %s", m.feed.Name)

	// Right side - messages or input
	right := ""

	switch m.mode {
	case ModeFilter:
		right = fmt.Sprintf("Filter: %s", addCursor(m.filterInput))
	default:
		if m.errorMsg != "" {
			right = styleError.Render(m.errorMsg)
		} else if m.statusMsg != "" {
			// Make confirmation messages green
			if strings.Contains(m.statusMsg, "copied") || strings.Contains(m.statusMsg, "Loaded") {
				right = styleSuccess.Render(m.statusMsg)
			} else {
				right = m.statusMsg
			}
		} else {
			right = styleSubtle.Render("Press / to filter | t to switch feed | ? for help | q to quit")
		}
	}

	// Center spacing
	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// addCursor adds a visible cursor (█) to a text string
func addCursor(text string) string {
	return text + "█"
}

// renderRaw renders the raw feed body view
func (m Model) renderRaw() string {
	title := styleTitle.Render(fmt.Sprintf("Raw %s feed", m.feed.Name))
	scroll := styleSubtle.Render(fmt.Sprintf("%3.0f%%", m.rawView.ScrollPercent()*100))

	heading := title
	spacing := m.width - 4 - lipgloss.Width(title) - lipgloss.Width(scroll)
	if spacing > 0 {
		heading += strings.Repeat(" ", spacing) + scroll
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		heading,
		"",
		m.rawView.View(),
	)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Width(m.width - 2).
		Padding(0, 1).
		Render(content)

	footer := styleSubtle.Render("j/k scroll | g/G top/bottom | y copy | v or esc back")

	return lipgloss.JoinVertical(lipgloss.Left, box, footer)
}

// renderHelp renders the key reference
func (m Model) renderHelp() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("buoycli"))
	if m.version != "" {
		b.WriteString(" " + styleSubtle.Render(m.version))
	}
	b.WriteString("\n\n")

	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Navigation", [][2]string{
			{"j / down / wheel", "next row (wraps at the end)"},
			{"k / up / wheel", "previous row (wraps at the top)"},
			{"pgdn / pgup", "jump a page"},
			{"g / G", "first / last row"},
		}},
		{"Feeds", [][2]string{
			{"t / tab", "switch between stations and observations"},
			{"r", "refetch the current feed"},
			{"v", "view the raw feed body"},
		}},
		{"Rows", [][2]string{
			{"/", "fuzzy filter rows"},
			{"esc", "clear the filter"},
			{"y", "copy the selected row"},
		}},
		{"General", [][2]string{
			{"?", "toggle this help"},
			{"q / ctrl+c", "quit"},
		}},
	}

	for _, section := range sections {
		b.WriteString(styleHeader.Render(section.title) + "\n")
		for _, entry := range section.keys {
			b.WriteString(fmt.Sprintf("  %-18s %s\n", entry[0], entry[1]))
		}
		b.WriteString("\n")
	}

	b.WriteString(styleSubtle.Render("press ? or esc to close"))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorGray).
		Padding(1, 2).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
