// layout.go centralizes all terminal layout calculations.
//
// The UI is a single centered column: a two-row header (nav bar and its
// indicator row), the scrolling page viewport, and a footer that reserves
// either two or three rows depending on terminal width and footer content
// density. Dialogs and the help popup are placed over the page area.
package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/theme"
)

// LayoutDimensions holds all calculated layout dimensions for the UI.
type LayoutDimensions struct {
	PageLeft     int // left margin that centers the column
	PageWidth    int // width of the column, gutter included
	PageHeight   int // rows available to the page viewport
	FooterHeight int
	DialogWidth  int // outer width of a detail dialog
	DialogHeight int // outer height of a detail dialog
}

// calculateLayout computes all UI dimensions based on terminal size.
func (m *Model) calculateLayout() LayoutDimensions {
	pageWidth := min(MaxPageWidth, m.width)
	footerHeight := m.footerHeightForWidth(m.width)
	pageHeight := max(0, m.height-HeaderRows-footerHeight)
	return LayoutDimensions{
		PageLeft:     max(0, (m.width-pageWidth)/2),
		PageWidth:    pageWidth,
		PageHeight:   pageHeight,
		FooterHeight: footerHeight,
		DialogWidth:  min(DialogMaxWidth, max(0, m.width-4)),
		DialogHeight: min(DialogMaxHeight, max(0, pageHeight-2)),
	}
}

// footerHeightForWidth returns how many rows should be reserved for the footer.
// It prefers FooterMinRows and expands to FooterMaxRows when the footer
// segments cannot fit without dropping content.
func (m *Model) footerHeightForWidth(width int) int {
	_, fit := m.buildStatusRows(width, FooterMinRows)
	if fit {
		return FooterMinRows
	}
	return FooterMaxRows
}

// applyLayout updates the viewport widgets to match the calculated layout.
func (m *Model) applyLayout(layout LayoutDimensions) {
	m.viewport.Width = layout.PageWidth
	m.viewport.Height = layout.PageHeight

	frameW := m.styles.dialog.GetHorizontalFrameSize()
	frameH := m.styles.dialog.GetVerticalFrameSize()
	m.dialogView.Width = max(0, layout.DialogWidth-frameW)
	// title row, spacer row and hint row
	m.dialogView.Height = max(1, layout.DialogHeight-frameH-3)
}

// headerSlot is one clickable label in the header row.
type headerSlot struct {
	id    string
	label string
	x, w  int
}

type headerLayout struct {
	name   string
	nameW  int
	tabs   []headerSlot
	themes []headerSlot
}

// layoutHeader places the name, the section tabs and the theme switch on the
// first header row. X positions are relative to the page column.
func (m *Model) layoutHeader(layout LayoutDimensions) headerLayout {
	h := headerLayout{name: m.portfolio.Name}
	h.nameW = lipgloss.Width(h.name)

	x := h.nameW + 3
	if h.name == "" {
		x = 1
	}
	for _, s := range content.Sections() {
		label := s.Title()
		w := lipgloss.Width(label)
		h.tabs = append(h.tabs, headerSlot{id: s.String(), label: label, x: x, w: w})
		x += w + 2
	}

	modes := theme.Modes()
	themeWidth := len(modes)*3 - 1
	tx := max(x+1, layout.PageWidth-themeWidth-1)
	for _, mode := range modes {
		h.themes = append(h.themes, headerSlot{id: string(mode), label: mode.Icon(), x: tx, w: 1})
		tx += 3
	}
	return h
}
