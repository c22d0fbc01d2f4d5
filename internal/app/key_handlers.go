package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arniber21/portfolio/internal/content"
)

// handleKey routes key presses. Global listeners registered by open overlays
// run before any view-level binding.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}
	if m.filtering {
		return m.handleFilterKey(msg)
	}
	if m.bus.DispatchKey(msg) {
		return m, m.startAnimation()
	}

	var cmd tea.Cmd
	switch d, ok := m.activeDialog(); {
	case ok:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		cmd = m.handleDialogKey(d, msg)
	case m.helpPopup.IsOpen():
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Close, m.keys.Help):
			if err := m.helpPopup.CloseControl().Activate(); err != nil {
				m.setStatusError("Could not close help", err)
			}
		}
	default:
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		cmd = m.handleBrowseKey(msg)
	}
	return m, tea.Batch(cmd, m.startAnimation())
}

// handleDialogKey routes key presses while a project or post dialog is open.
func (m *Model) handleDialogKey(d *dialog, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		if err := d.ctrl.CloseControl().Activate(); err != nil {
			m.setStatusError("Could not close dialog", err)
		}
	case key.Matches(msg, m.keys.DialogCopy):
		return m.copyLinkCmd(d.title, d.link)
	case key.Matches(msg, m.keys.Up):
		m.dialogView.LineUp(1)
	case key.Matches(msg, m.keys.Down):
		m.dialogView.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.dialogView.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.dialogView.HalfViewDown()
	case key.Matches(msg, m.keys.Top):
		m.dialogView.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.dialogView.GotoBottom()
	}
	return nil
}

// handleBrowseKey routes key presses on the page.
func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
	case key.Matches(msg, m.keys.NextSection):
		if r := msg.Runes; len(r) == 1 && r[0] >= '1' && r[0] <= '9' {
			sections := content.Sections()
			if i := int(r[0] - '1'); i < len(sections) {
				m.nav.SetActive(sections[i].String())
			}
			return nil
		}
		m.focusSection(1)
	case key.Matches(msg, m.keys.PrevSection):
		m.focusSection(-1)
	case key.Matches(msg, m.keys.Up):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.ViewUp()
		m.afterPageScroll()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.ViewDown()
		m.afterPageScroll()
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.afterPageScroll()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		m.afterPageScroll()
	case key.Matches(msg, m.keys.Open):
		if s, id, ok := m.focusedItem(); ok {
			return m.activateItem(s, id)
		}
		m.status = "Nothing focused (j/k to move)"
	case key.Matches(msg, m.keys.Copy):
		if s, id, ok := m.focusedItem(); ok {
			return m.copyItemLink(s, id)
		}
		m.status = "Nothing focused (j/k to move)"
	case key.Matches(msg, m.keys.Filter):
		return m.startFilter()
	case key.Matches(msg, m.keys.AllProjects):
		m.showAllProjects = !m.showAllProjects
		if m.showAllProjects {
			m.status = "Showing all projects"
		} else {
			m.status = "Showing featured projects"
		}
		m.relayout()
	case key.Matches(msg, m.keys.Theme):
		m.cycleTheme()
	case msg.Type == tea.KeyEsc:
		if m.query != "" {
			m.filter.SetValue("")
			m.setQuery("")
			m.status = "Filter cleared"
			return nil
		}
		m.clearFocus()
	}
	return nil
}

type focusTarget struct {
	section content.Section
	span    span
}

// focusTargets lists every list item in page order.
func (m *Model) focusTargets() []focusTarget {
	var out []focusTarget
	for _, s := range listSections {
		for _, sp := range m.page.spans[s] {
			out = append(out, focusTarget{section: s, span: sp})
		}
	}
	return out
}

// focusedItem returns the item the list highlights currently mark.
func (m *Model) focusedItem() (content.Section, string, bool) {
	for _, s := range listSections {
		if id, ok := m.lists[s].Active(); ok {
			return s, id, true
		}
	}
	return 0, "", false
}

func (m *Model) clearFocus() {
	for _, s := range listSections {
		if _, ok := m.lists[s].Active(); ok {
			m.lists[s].Clear()
		}
	}
}

// moveFocus moves the keyboard highlight step items through the page,
// across section boundaries, and scrolls the item into view. With nothing
// focused it starts from the first item at or below the top of the page.
func (m *Model) moveFocus(step int) {
	targets := m.focusTargets()
	if len(targets) == 0 {
		return
	}
	next := -1
	if s, id, ok := m.focusedItem(); ok {
		for i, t := range targets {
			if t.section == s && t.span.id == id {
				next = clamp(i+step, 0, len(targets)-1)
				break
			}
		}
	}
	if next < 0 {
		next = len(targets) - 1
		for i, t := range targets {
			if t.span.start >= m.viewport.YOffset {
				next = i
				break
			}
		}
	}

	target := targets[next]
	for _, s := range listSections {
		if s != target.section {
			m.lists[s].Clear()
		}
	}
	m.lists[target.section].SetActive(target.span.id)
	m.ensureVisible(target.span)
}

func (m *Model) ensureVisible(sp span) {
	top := m.viewport.YOffset
	switch {
	case sp.start < top:
		m.viewport.SetYOffset(sp.start)
	case sp.end > top+m.viewport.Height:
		m.viewport.SetYOffset(min(sp.start, sp.end-m.viewport.Height))
	default:
		return
	}
	m.syncNav()
}
