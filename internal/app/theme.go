package app

import (
	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/theme"
)

// applyTheme swaps palette and styles. The page is rebuilt because its
// static lines carry the old colors.
func (m *Model) applyTheme(mode theme.Mode) {
	m.themeMode = mode
	m.palette = theme.PaletteFor(mode.IsDark(m.darkBackground))
	m.styles = newStyles(m.palette)
	if m.width > 0 && m.height > 0 {
		m.relayout()
	}
}

// onThemeChange runs when the theme switch's active option changes.
func (m *Model) onThemeChange(id string, ok bool) {
	if !ok {
		return
	}
	mode, err := theme.Parse(id)
	if err != nil {
		m.setStatusError("Unknown theme", err, "theme", id)
		return
	}
	if mode == m.themeMode {
		return
	}
	m.applyTheme(mode)
	if err := m.saveTheme(mode); err != nil {
		m.setStatusError("Could not save theme", err, "theme", string(mode))
		return
	}
	m.status = "Theme: " + mode.Label()
}

// cycleTheme moves the theme switch to the next mode, as a click would.
func (m *Model) cycleTheme() {
	m.themeSwitch.Click(string(m.themeMode.Next()))
}

// onNavChange scrolls the page to the section whose tab became active.
func (m *Model) onNavChange(id string, ok bool) {
	if !ok || m.navSyncing {
		return
	}
	s, err := content.ParseSection(id)
	if err != nil {
		return
	}
	if line, found := m.page.sections[s]; found {
		m.scrollTo(line)
	}
}

// scrollTo moves the page so that line is at the top, unless an overlay
// holds the page.
func (m *Model) scrollTo(line int) {
	if m.overlayOpen() {
		return
	}
	m.viewport.SetYOffset(line)
	m.refreshHover()
}

// syncNav marks the tab of the section at the top of the page without
// scrolling back to that section's heading.
func (m *Model) syncNav() {
	s := m.page.sectionAt(m.viewport.YOffset).String()
	if id, ok := m.nav.Active(); ok && id == s {
		return
	}
	m.navSyncing = true
	m.nav.SetActive(s)
	m.navSyncing = false
}

// focusSection scrolls to the section step tabs away from the active one.
func (m *Model) focusSection(step int) {
	sections := content.Sections()
	current := content.SectionAbout
	if id, ok := m.nav.Active(); ok {
		if s, err := content.ParseSection(id); err == nil {
			current = s
		}
	}
	idx := (int(current) + step + len(sections)) % len(sections)
	m.nav.SetActive(sections[idx].String())
}
