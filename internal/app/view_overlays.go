package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arniber21/portfolio/internal/overlay"
)

// renderOverlay returns the open overlay, marked for hit-testing, or "".
func (m *Model) renderOverlay() string {
	if d, ok := m.activeDialog(); ok {
		return m.renderDialog(d)
	}
	if m.helpPopup.IsOpen() {
		return m.renderHelpPopup()
	}
	return ""
}

// renderDialog draws the project or post dialog: a title row with the close
// control, the scrollable rendered body and a key hint.
func (m *Model) renderDialog(d *dialog) string {
	inner := m.dialogView.Width
	hint := "esc close · y copy link · ↑/↓ scroll"
	if summary := m.dialogMetricsSummary(d); summary != "" {
		gap := inner - lipgloss.Width(hint) - lipgloss.Width(summary)
		if gap >= 2 {
			hint += strings.Repeat(" ", gap) + summary
		}
	}
	hint = m.styles.subtle.Render(truncate(hint, inner))
	body := strings.Join([]string{
		m.overlayTitleRow(d.ctrl, d.title, inner),
		"",
		m.dialogView.View(),
		hint,
	}, "\n")
	box := m.styles.dialog.Width(inner + m.styles.dialog.GetHorizontalPadding()).Render(body)
	return m.markContent(d.ctrl, box)
}

// renderHelpPopup draws the full key reference.
func (m *Model) renderHelpPopup() string {
	frame := m.styles.popup.GetHorizontalFrameSize()
	inner := max(0, min(HelpPopupWidth, m.width-2)-frame)
	m.help.Width = inner
	body := m.overlayTitleRow(m.helpPopup, "Keys", inner) + "\n\n" + m.help.FullHelpView(m.keys.FullHelp())
	box := m.styles.popup.Width(inner + m.styles.popup.GetHorizontalPadding()).Render(body)
	return m.markContent(m.helpPopup, box)
}

// overlayTitleRow puts the title on the left and the close control on the
// right of a row inner cells wide.
func (m *Model) overlayTitleRow(ctrl *overlay.Controller, text string, inner int) string {
	title, err := ctrl.Title().Render(text)
	if err != nil {
		appLog.Error("render overlay title", "owner", ctrl.OwnerID(), "error", err)
	}
	closeLabel := "[×]"
	closeW := lipgloss.Width(closeLabel)
	title = truncate(m.styles.title.Render(title), max(0, inner-closeW-1))
	gap := max(1, inner-lipgloss.Width(title)-closeW)
	closeBtn := m.zones.Mark(closeZoneID(ctrl), m.styles.closeButton.Render(closeLabel))
	return title + strings.Repeat(" ", gap) + closeBtn
}

// markContent renders box through the content part and marks it with the
// zone the controller reads its outside-press region from.
func (m *Model) markContent(ctrl *overlay.Controller, box string) string {
	rendered, err := ctrl.Content().Render(box)
	if err != nil {
		appLog.Error("render overlay content", "owner", ctrl.OwnerID(), "error", err)
		return ""
	}
	zoneID, err := ctrl.Content().ZoneID()
	if err != nil {
		appLog.Error("overlay zone id", "owner", ctrl.OwnerID(), "error", err)
		return rendered
	}
	return m.zones.Mark(zoneID, rendered)
}
