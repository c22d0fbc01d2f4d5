package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/geom"
)

// View draws the full UI: header, page (or the open overlay over it) and
// the status footer. Zone markers are resolved last so overlay regions
// reflect exactly what was drawn.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	body := m.renderPage()
	if top := m.renderOverlay(); top != "" {
		body = lipgloss.Place(m.width, m.layout.PageHeight,
			lipgloss.Center, lipgloss.Center, top,
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(m.palette.Backdrop),
		)
	}
	body = padBlock(body, m.width, m.layout.PageHeight)

	view := m.renderHeader() + "\n" + body + "\n" + m.renderStatus(m.width, m.layout.FooterHeight)
	return m.zones.Scan(padBlock(view, m.width, m.height))
}

// renderHeader draws the nav bar and, below it, the indicator row with the
// animated nav and theme highlights.
func (m *Model) renderHeader() string {
	margin := strings.Repeat(" ", m.layout.PageLeft)
	width := m.layout.PageWidth

	var row strings.Builder
	cursor := 0
	place := func(x int, s string, w int) {
		if x < cursor || x+w > width {
			return
		}
		row.WriteString(strings.Repeat(" ", x-cursor))
		row.WriteString(s)
		cursor = x + w
	}
	place(0, m.styles.name.Render(m.header.name), m.header.nameW)
	for _, tab := range m.header.tabs {
		style := m.styles.tab
		if m.nav.IsActive(tab.id) {
			style = m.styles.tabActive
		}
		place(tab.x, style.Render(tab.label), tab.w)
	}
	for _, opt := range m.header.themes {
		style := m.styles.tab
		if m.themeSwitch.IsActive(opt.id) {
			style = m.styles.tabActive
		}
		place(opt.x, style.Render(opt.label), opt.w)
	}

	indicator := []rune(strings.Repeat(" ", width))
	if r, ok := m.nav.Highlight().Rect(); ok {
		underline(indicator, r, m.layout.PageLeft)
	}
	if r, ok := m.themeSwitch.Highlight().Rect(); ok {
		underline(indicator, r, m.layout.PageLeft)
	}

	return margin + fitWidth(row.String(), width) + "\n" +
		margin + m.styles.indicator.Render(string(indicator))
}

// underline marks the columns of r, shifted left by offset, in cells.
func underline(cells []rune, r geom.Rect, offset int) {
	for x := r.X - offset; x < r.X-offset+r.W; x++ {
		if x >= 0 && x < len(cells) {
			cells[x] = '━'
		}
	}
}

// renderPage draws the visible viewport lines inside the centered column.
func (m *Model) renderPage() string {
	margin := strings.Repeat(" ", m.layout.PageLeft)
	lines := strings.Split(m.viewport.View(), "\n")
	for i, line := range lines {
		lines[i] = margin + line
	}
	return strings.Join(lines, "\n")
}

// composePage fills the dynamic rows of the laid-out page (intro reveal,
// role loop, email, link pills) and the highlight gutter, then hands the
// result to the viewport. It runs on every frame that changes any of them.
func (m *Model) composePage() {
	p := m.page
	if len(p.lines) == 0 {
		m.viewport.SetContent("")
		return
	}
	lines := make([]string, len(p.lines))
	copy(lines, p.lines)

	if p.introLine >= 0 {
		lines[p.introLine] = m.styles.name.Render(m.intro.View())
	}
	if p.roleLine >= 0 {
		lines[p.roleLine] = m.styles.text.Render(m.roles.View())
	}
	connect := m.lists[content.SectionConnect]
	if p.emailLine >= 0 {
		style := m.styles.pill
		if connect.IsActive(emailID) {
			style = m.styles.pillActive
		}
		lines[p.emailLine] = style.Render("✉ " + m.portfolio.Email)
	}
	if p.linksLine >= 0 {
		lines[p.linksLine] = m.renderLinks()
		under := []rune(strings.Repeat(" ", p.width))
		if r, ok := connect.Highlight().Rect(); ok && r.Y == p.linksLine {
			underline(under, r, 0)
		}
		lines[p.linksLine+1] = m.styles.indicator.Render(strings.TrimRight(string(under), " "))
	}

	gutter := make([]bool, len(lines))
	for _, s := range listSections {
		r, ok := m.lists[s].Highlight().Rect()
		if !ok || (s == content.SectionConnect && r.Y == p.linksLine) {
			continue
		}
		for y := r.Y; y < r.Y+r.H; y++ {
			if y >= 0 && y < len(gutter) {
				gutter[y] = true
			}
		}
	}
	blank := strings.Repeat(" ", GutterWidth)
	mark := m.styles.gutter.Render("▌") + strings.Repeat(" ", GutterWidth-1)
	for i, line := range lines {
		if gutter[i] {
			lines[i] = mark + line
		} else {
			lines[i] = blank + line
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderLinks draws the link pills, each displaced inside its slot by its
// magnet.
func (m *Model) renderLinks() string {
	connect := m.lists[content.SectionConnect]
	var b strings.Builder
	cursor := 0
	for _, slot := range m.page.links {
		dx, _ := m.magnets[slot.id].Offset()
		x := max(cursor, slot.x+clamp(dx, -LinkMaxShift, LinkMaxShift))
		style := m.styles.pill
		if connect.IsActive(slot.id) {
			style = m.styles.pillActive
		}
		b.WriteString(strings.Repeat(" ", x-cursor))
		b.WriteString(style.Render(" " + slot.label + " "))
		cursor = x + slot.w
	}
	return b.String()
}
