package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/events"
	"github.com/arniber21/portfolio/internal/overlay"
)

// handleMouse routes mouse input: presses go through the event bus first so
// an open overlay sees them before the page does, motion drives hover state
// and the link magnets, and the wheel scrolls whatever is on top.
func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case events.IsPointerPress(msg):
		cmd = m.handlePress(msg)
	case isWheel(msg):
		m.handleWheel(msg)
	case msg.Action == tea.MouseActionMotion:
		m.handleMotion(msg.X, msg.Y)
	}
	return m, tea.Batch(cmd, m.startAnimation())
}

func isWheel(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress &&
		(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown)
}

func closeZoneID(c *overlay.Controller) string {
	return c.ZoneID() + "-close"
}

func (m *Model) handlePress(msg tea.MouseMsg) tea.Cmd {
	if m.bus.DispatchPress(msg) {
		return nil
	}

	// Presses inside an open overlay only reach its close control.
	if m.overlayOpen() {
		for _, ctrl := range m.openControllers() {
			if r, ok := m.zoneRect(closeZoneID(ctrl)); ok && r.Contains(msg.X, msg.Y) {
				if err := ctrl.CloseControl().Activate(); err != nil {
					m.setStatusError("Could not close dialog", err)
				}
			}
		}
		return nil
	}

	if msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if msg.Y < HeaderRows {
		m.handleHeaderPress(msg.X, msg.Y)
		return nil
	}
	if s, id, ok := m.itemUnder(msg.X, msg.Y); ok {
		return m.activateItem(s, id)
	}
	return nil
}

func (m *Model) openControllers() []*overlay.Controller {
	var out []*overlay.Controller
	if d, ok := m.activeDialog(); ok {
		out = append(out, d.ctrl)
	}
	if m.helpPopup.IsOpen() {
		out = append(out, m.helpPopup)
	}
	return out
}

func (m *Model) handleHeaderPress(x, y int) {
	for _, tab := range m.header.tabs {
		if r, ok := m.nav.Bounds(tab.id); ok && r.Contains(x, y) {
			m.nav.Click(tab.id)
			return
		}
	}
	for _, opt := range m.header.themes {
		if r, ok := m.themeSwitch.Bounds(opt.id); ok && r.Contains(x, y) {
			m.themeSwitch.Click(opt.id)
			return
		}
	}
}

// activateItem is what a click or enter does to a list item: projects and
// posts open their dialog, everything else copies its link.
func (m *Model) activateItem(s content.Section, id string) tea.Cmd {
	switch s {
	case content.SectionProjects, content.SectionWriting:
		return m.openDialog(s, id)
	default:
		return m.copyItemLink(s, id)
	}
}

func (m *Model) handleWheel(msg tea.MouseMsg) {
	up := msg.Button == tea.MouseButtonWheelUp
	if _, ok := m.activeDialog(); ok {
		if up {
			m.dialogView.LineUp(WheelStep)
		} else {
			m.dialogView.LineDown(WheelStep)
		}
		return
	}
	if m.overlayOpen() {
		return
	}
	if up {
		m.viewport.LineUp(WheelStep)
	} else {
		m.viewport.LineDown(WheelStep)
	}
	m.afterPageScroll()
}

func (m *Model) handleMotion(x, y int) {
	m.pointer = pointerState{x: x, y: y, inside: true}
	if m.overlayOpen() {
		m.leaveAll()
		return
	}
	m.trackPointer(x, y)
}

// toPage converts a screen cell to page coordinates.
func (m *Model) toPage(x, y int) (int, int, bool) {
	row := y - HeaderRows
	if row < 0 || row >= m.viewport.Height {
		return 0, 0, false
	}
	px := x - m.layout.PageLeft - GutterWidth
	py := row + m.viewport.YOffset
	if py >= len(m.page.lines) {
		return px, py, false
	}
	return px, py, true
}

// itemUnder returns the list item at screen cell (x, y).
func (m *Model) itemUnder(x, y int) (content.Section, string, bool) {
	px, py, ok := m.toPage(x, y)
	if !ok {
		return 0, "", false
	}
	for _, s := range listSections {
		if id, ok := m.itemRect(s, px, py); ok {
			return s, id, true
		}
	}
	return 0, "", false
}

func (m *Model) itemRect(s content.Section, px, py int) (string, bool) {
	id, ok := m.page.itemAt(s, px, py)
	if !ok {
		return "", false
	}
	if s != content.SectionConnect && (px < 0 || px >= m.page.width) {
		return "", false
	}
	return id, true
}

// trackPointer derives pointer-enter and pointer-leave for every list from
// the pointer's cell. Crossing straight from one item into the next is
// applied as the enter alone: it ends in the same state as leave-then-enter
// and the highlight slides over instead of disappearing for a frame.
func (m *Model) trackPointer(x, y int) {
	px, py, onPage := m.toPage(x, y)
	for _, s := range listSections {
		tracker := m.lists[s]
		id, over := "", false
		if onPage {
			id, over = m.itemRect(s, px, py)
		}
		active, hasActive := tracker.Active()
		switch {
		case over && !tracker.IsActive(id):
			tracker.Enter(id)
		case !over && hasActive:
			tracker.Leave(active)
		}
	}

	for _, slot := range m.page.links {
		magnet := m.magnets[slot.id]
		if magnet == nil {
			continue
		}
		bx, by := magnet.Target()
		magnet.Leave()
		if bounds, ok := m.lists[content.SectionConnect].Bounds(slot.id); ok && onPage {
			magnet.Track(px, py, bounds)
		}
		if ax, ay := magnet.Target(); ax != bx || ay != by {
			m.magnetsMoving = true
		}
	}
}

// leaveAll clears hover state and recentres every link.
func (m *Model) leaveAll() {
	for _, s := range listSections {
		tracker := m.lists[s]
		if active, ok := tracker.Active(); ok {
			tracker.Leave(active)
		}
	}
	for _, magnet := range m.magnets {
		if x, y := magnet.Target(); x != 0 || y != 0 {
			m.magnetsMoving = true
		}
		magnet.Leave()
	}
}

// refreshHover re-derives hover state after the page moved under a still
// pointer.
func (m *Model) refreshHover() {
	if m.pointer.inside && !m.overlayOpen() {
		m.trackPointer(m.pointer.x, m.pointer.y)
	}
}

// afterPageScroll runs after any scroll of the page viewport.
func (m *Model) afterPageScroll() {
	m.syncNav()
	m.refreshHover()
}
