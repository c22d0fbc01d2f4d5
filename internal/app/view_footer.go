package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m *Model) renderStatus(width, rows int) string {
	if m.filtering {
		m.filter.Width = max(0, width-lipgloss.Width(m.filter.Prompt)-2)
		input := " " + m.filter.View()
		rest := m.renderStatusRows(width, rows-1)
		if rest == "" {
			return fitWidth(input, width)
		}
		return fitWidth(input, width) + "\n" + rest
	}
	return m.renderStatusRows(width, rows)
}

func (m *Model) renderStatusRows(width, rows int) string {
	if rows <= 0 {
		return ""
	}
	statusRows, _ := m.buildStatusRows(width, rows)
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, m.styles.status.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	context := m.statusContextSegments()
	status := m.statusMessageSegment()

	segments := make([]string, 0, len(help)+len(context)+2)
	if len(help) > 0 {
		segments = append(segments, "Keys: "+help[0])
		segments = append(segments, help[1:]...)
	}
	if len(context) > 0 {
		segments = append(segments, context...)
	}
	if status != "" {
		segments = append(segments, "Status: "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		segment := seg
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		if rows[rowIndex] == "" {
			rows[rowIndex] = truncateWithEllipsis(segment, width)
		} else {
			rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		}
		break
	}
	return rows, fit
}

func truncateWithEllipsis(value string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(value) <= width {
		return value
	}
	if width == 1 {
		return "…"
	}
	return ansi.Truncate(value, width-1, "") + "…"
}

func (m *Model) statusHelpSegments() []string {
	bindings := m.keys.ShortHelp()
	switch {
	case m.filtering:
		return []string{"type to filter", "enter keep", "esc clear"}
	case m.helpPopup.IsOpen():
		return []string{"esc close"}
	case m.active != "":
		bindings = m.keys.dialogHelp()
	}
	return bindingSegments(bindings)
}

func bindingSegments(bindings []key.Binding) []string {
	out := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		out = append(out, h.Key+" "+h.Desc)
	}
	return out
}

func (m *Model) statusContextSegments() []string {
	parts := make([]string, 0, 2)
	if m.query != "" && !m.filtering {
		parts = append(parts, "Filter: "+m.query)
	}
	if m.showAllProjects {
		parts = append(parts, "All projects")
	}
	return parts
}

func (m *Model) statusMessageSegment() string {
	return strings.TrimSpace(m.status)
}
