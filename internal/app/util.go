package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// truncate cuts s to at most width cells, keeping ANSI sequences intact.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "")
}

// fitWidth pads or truncates s to exactly width cells.
func fitWidth(s string, width int) string {
	s = truncate(s, width)
	if gap := width - lipgloss.Width(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// padBlock fits a multi-line block to width x height so a shorter frame
// overwrites everything the previous one drew.
func padBlock(block string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := strings.Split(block, "\n")
	out := make([]string, height)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fitWidth(line, width)
	}
	return strings.Join(out, "\n")
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}

// renderWidthBucket rounds wide dialogs down to a multiple of
// RenderWidthBucket so small resizes reuse cached renders.
func renderWidthBucket(width int) int {
	switch {
	case width <= 0:
		return 80
	case width < RenderWidthBucket*5:
		return width
	default:
		return width - width%RenderWidthBucket
	}
}

// wrapLines word-wraps plain text to width.
func wrapLines(text string, width int) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if width <= 0 {
		return []string{text}
	}
	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(text), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
