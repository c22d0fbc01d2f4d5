package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arniber21/portfolio/internal/content"
	"github.com/arniber21/portfolio/internal/overlay"
)

// dialog is the detail view of one project or post.
type dialog struct {
	key     string
	section content.Section
	id      string
	title   string
	link    string
	ctrl    *overlay.Controller
}

func dialogKey(s content.Section, id string) string {
	return s.String() + ":" + id
}

// buildDialogs creates one controller per project and post. Each has its
// own owner id, so its listeners and scroll hold are independent.
func (m *Model) buildDialogs() {
	add := func(s content.Section, id, title, link string) {
		key := dialogKey(s, id)
		ctrl := overlay.New(m.bus, m.scroll,
			overlay.WithOwnerID(s.String()+"."+id),
			overlay.WithOnChange(m.onOverlayChange(key)),
		)
		ctrl.SetRegion(m.regionFor(ctrl.ZoneID()))
		m.dialogs[key] = &dialog{key: key, section: s, id: id, title: title, link: link, ctrl: ctrl}
		m.dialogOrder = append(m.dialogOrder, key)
	}
	for _, p := range m.portfolio.Projects {
		add(content.SectionProjects, p.ID, p.Name, p.Link)
	}
	for _, p := range m.portfolio.Posts {
		add(content.SectionWriting, p.UID, p.Title, p.Link)
	}
}

// openDialog activates the trigger of the dialog for item id in section s.
func (m *Model) openDialog(s content.Section, id string) tea.Cmd {
	if m.overlayOpen() {
		return nil
	}
	d, ok := m.dialogs[dialogKey(s, id)]
	if !ok {
		return nil
	}
	if err := d.ctrl.Trigger().Activate(); err != nil {
		m.setStatusError("Could not open "+d.title, err)
		return nil
	}
	return m.requestDialogRender(d)
}

// openHelp shows the key reference popup.
func (m *Model) openHelp() {
	if m.overlayOpen() {
		return
	}
	m.helpPopup.Open()
}

// activeDialog returns the open dialog, if any.
func (m *Model) activeDialog() (*dialog, bool) {
	d, ok := m.dialogs[m.active]
	if !ok || !d.ctrl.IsOpen() {
		return nil, false
	}
	return d, true
}

// onOverlayChange keeps the model in step with a controller's transitions.
// Every close path, including outside presses and Escape handled by the
// controller's own listeners, lands here.
func (m *Model) onOverlayChange(key string) func(bool, overlay.CloseReason) {
	return func(open bool, reason overlay.CloseReason) {
		if open {
			m.stopFiltering()
			if d, ok := m.dialogs[key]; ok {
				m.active = key
				m.status = d.title + " (esc or click outside to close)"
			} else {
				m.status = "Keys (esc to close)"
			}
			appLog.Debug("overlay opened", "key", key, "holders", m.scroll.Holders())
			return
		}
		if m.active == key {
			m.active = ""
			m.rendering = false
		}
		if reason != overlay.ReasonTeardown {
			m.status = "Closed"
		}
		appLog.Debug("overlay closed", "key", key, "reason", reason, "holders", m.scroll.Holders())
	}
}

// markdown is the dialog body. The title is rendered separately in the
// dialog header.
func (d *dialog) markdown(p content.Portfolio) string {
	var b strings.Builder
	switch d.section {
	case content.SectionProjects:
		project, ok := p.ProjectByID(d.id)
		if !ok {
			return ""
		}
		if project.Period != "" {
			fmt.Fprintf(&b, "_%s_\n\n", project.Period)
		}
		b.WriteString(project.Description + "\n\n")
		if len(project.Tags) > 0 {
			fmt.Fprintf(&b, "**Stack:** %s\n\n", strings.Join(project.Tags, " · "))
		}
		for _, award := range project.Awards {
			fmt.Fprintf(&b, "- ★ %s\n", award)
		}
		if len(project.Awards) > 0 {
			b.WriteString("\n")
		}
		if project.Link != "" {
			fmt.Fprintf(&b, "**Source:** %s\n\n", project.Link)
		}
		if post, ok := p.PostBySlug(project.BlogSlug); ok {
			fmt.Fprintf(&b, "**Read more:** %s (%s)\n", post.Title, post.Link)
		}
	case content.SectionWriting:
		post, ok := p.PostBySlug(d.id)
		if !ok {
			return ""
		}
		b.WriteString(post.Description + "\n\n")
		fmt.Fprintf(&b, "**Read:** %s\n", post.Link)
	}
	return b.String()
}
