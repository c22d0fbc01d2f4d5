package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arniber21/portfolio/internal/selection"
)

// frameMsg advances the highlight and magnet springs by one frame.
type frameMsg struct {
	seq int
}

// handleSpinnerTick updates the spinner animation state.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	if m.rendering {
		m.dialogView.SetContent(m.spinner.View() + " Rendering...")
	}
	return m, cmd
}

// handleWindowResize updates layout dimensions after terminal resize. An
// open dialog is re-rendered at the new width.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.relayout()
	var cmd tea.Cmd
	if d, ok := m.activeDialog(); ok {
		cmd = m.requestDialogRender(d)
	}
	return m, tea.Batch(cmd, m.startAnimation())
}

func (m *Model) trackers() []*selection.Tracker {
	out := make([]*selection.Tracker, 0, len(listSections)+2)
	out = append(out, m.nav, m.themeSwitch)
	for _, s := range listSections {
		out = append(out, m.lists[s])
	}
	return out
}

func (m *Model) needsFrames() bool {
	if m.magnetsMoving {
		return true
	}
	for _, t := range m.trackers() {
		if t.Highlight().Moving() {
			return true
		}
	}
	return false
}

// startAnimation begins the frame loop if something is moving and the loop
// is not already running.
func (m *Model) startAnimation() tea.Cmd {
	if m.animating || !m.needsFrames() {
		return nil
	}
	m.animating = true
	m.frameSeq++
	return frameCmd(m.frameSeq)
}

func frameCmd(seq int) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return frameMsg{seq: seq}
	})
}

// handleFrame steps every spring. The loop stops once all of them settle.
func (m *Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if !m.animating || msg.seq != m.frameSeq {
		return m, nil
	}
	moving := false
	for _, t := range m.trackers() {
		if t.Tick() {
			moving = true
		}
	}
	magnets := false
	for _, magnet := range m.magnets {
		if magnet.Tick() {
			magnets = true
		}
	}
	m.magnetsMoving = magnets
	m.composePage()

	if !moving && !magnets {
		m.animating = false
		return m, nil
	}
	return m, frameCmd(m.frameSeq)
}
