package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arniber21/portfolio/internal/theme"
)

// styles is rebuilt from the palette whenever the theme changes.
type styles struct {
	name        lipgloss.Style
	tab         lipgloss.Style
	tabActive   lipgloss.Style
	indicator   lipgloss.Style
	heading     lipgloss.Style
	title       lipgloss.Style
	text        lipgloss.Style
	muted       lipgloss.Style
	subtle      lipgloss.Style
	award       lipgloss.Style
	tag         lipgloss.Style
	gutter      lipgloss.Style
	pill        lipgloss.Style
	pillActive  lipgloss.Style
	dialog      lipgloss.Style
	popup       lipgloss.Style
	closeButton lipgloss.Style
	status      lipgloss.Style
	errorStatus lipgloss.Style
}

func newStyles(p theme.Palette) styles {
	base := lipgloss.NewStyle().Foreground(p.Text)
	return styles{
		name:        lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		tab:         lipgloss.NewStyle().Foreground(p.Muted),
		tabActive:   lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		indicator:   lipgloss.NewStyle().Foreground(p.Accent),
		heading:     lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		title:       lipgloss.NewStyle().Bold(true).Foreground(p.Text),
		text:        base,
		muted:       lipgloss.NewStyle().Foreground(p.Muted),
		subtle:      lipgloss.NewStyle().Foreground(p.Subtle),
		award:       lipgloss.NewStyle().Foreground(p.Award),
		tag:         lipgloss.NewStyle().Foreground(p.Muted).Background(p.Highlight),
		gutter:      lipgloss.NewStyle().Foreground(p.Accent),
		pill:        lipgloss.NewStyle().Foreground(p.Muted),
		pillActive:  lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		dialog:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		popup:       lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(p.Border).Padding(0, 1),
		closeButton: lipgloss.NewStyle().Foreground(p.Muted),
		status:      lipgloss.NewStyle().Foreground(p.Subtle),
		errorStatus: lipgloss.NewStyle().Foreground(p.Award),
	}
}
