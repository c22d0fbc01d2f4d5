package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arniber21/portfolio/internal/content"
)

// clipboardResultMsg reports the outcome of a background clipboard write.
type clipboardResultMsg struct {
	label string
	err   error
}

// copyLinkCmd writes target to the system clipboard off the update loop.
// Some platforms shell out to xclip or pbcopy, which can block.
func (m *Model) copyLinkCmd(label, target string) tea.Cmd {
	if target == "" {
		m.status = "Nothing to copy for " + label
		return nil
	}
	write := m.writeClipboard
	m.status = "Copying " + label + "..."
	return func() tea.Msg {
		return clipboardResultMsg{label: label, err: write(target)}
	}
}

func (m *Model) handleClipboardResult(msg clipboardResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setStatusError("Clipboard copy failed", msg.err, "item", msg.label)
		return m, nil
	}
	m.status = "Copied " + msg.label + " link"
	return m, nil
}

// linkFor returns the label and target a list item copies.
func (m *Model) linkFor(s content.Section, id string) (string, string, bool) {
	p := m.portfolio
	switch s {
	case content.SectionProjects:
		if project, ok := p.ProjectByID(id); ok {
			return project.Name, project.Link, true
		}
	case content.SectionWork:
		for _, job := range p.Work {
			if job.ID == id {
				return job.Company, job.Link, true
			}
		}
	case content.SectionWriting:
		if post, ok := p.PostBySlug(id); ok {
			return post.Title, post.Link, true
		}
	case content.SectionConnect:
		if id == emailID {
			return "email", "mailto:" + p.Email, p.Email != ""
		}
		for _, link := range p.Links {
			if link.Label == id {
				return link.Label, link.Link, true
			}
		}
	}
	return "", "", false
}

// copyItemLink copies the link of a list item.
func (m *Model) copyItemLink(s content.Section, id string) tea.Cmd {
	label, target, ok := m.linkFor(s, id)
	if !ok {
		return nil
	}
	return m.copyLinkCmd(label, target)
}
