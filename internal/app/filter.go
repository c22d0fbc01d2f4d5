package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/arniber21/portfolio/internal/content"
)

// rankByQuery returns the indexes of targets that fuzzy-match the current
// filter, best match first. An empty filter keeps every index in order.
func (m *Model) rankByQuery(targets []string) []int {
	query := strings.TrimSpace(m.query)
	if query == "" {
		out := make([]int, len(targets))
		for i := range targets {
			out[i] = i
		}
		return out
	}
	matches := fuzzy.Find(query, targets)
	out := make([]int, 0, len(matches))
	for _, match := range matches {
		out = append(out, match.Index)
	}
	return out
}

func (m *Model) matchesFilter(target string) bool {
	return len(m.rankByQuery([]string{target})) == 1
}

func (m *Model) filterProjects(projects []content.Project) []content.Project {
	targets := make([]string, len(projects))
	for i, p := range projects {
		targets[i] = p.Name + " " + strings.Join(p.Tags, " ")
	}
	return pick(projects, m.rankByQuery(targets))
}

func (m *Model) filterWork(work []content.WorkExperience) []content.WorkExperience {
	targets := make([]string, len(work))
	for i, w := range work {
		targets[i] = w.Title + " " + w.Company
	}
	return pick(work, m.rankByQuery(targets))
}

func (m *Model) filterPosts(posts []content.BlogPost) []content.BlogPost {
	targets := make([]string, len(posts))
	for i, p := range posts {
		targets[i] = p.Title
	}
	return pick(posts, m.rankByQuery(targets))
}

func (m *Model) filterLinks(links []content.SocialLink) []content.SocialLink {
	targets := make([]string, len(links))
	for i, l := range links {
		targets[i] = l.Label
	}
	return pick(links, m.rankByQuery(targets))
}

func pick[T any](items []T, order []int) []T {
	out := make([]T, 0, len(order))
	for _, i := range order {
		out = append(out, items[i])
	}
	return out
}

func newFilterInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "filter projects, work, writing, links"
	input.CharLimit = FilterCharLimit
	return input
}

// startFilter focuses the footer filter input.
func (m *Model) startFilter() tea.Cmd {
	m.filtering = true
	m.filter.SetValue(m.query)
	m.filter.CursorEnd()
	m.status = ""
	return m.filter.Focus()
}

// handleFilterKey routes keys while the filter input has focus. The page is
// re-laid out on every edit so matches show up as the user types.
func (m *Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.setQuery("")
		m.status = "Filter cleared"
		return m, nil
	case "enter":
		m.filtering = false
		m.filter.Blur()
		if m.query != "" {
			m.status = "Filtering by “" + m.query + "” (esc to clear)"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != m.query {
		m.setQuery(m.filter.Value())
	}
	return m, cmd
}

// stopFiltering hands the keyboard back without touching the query. Opening
// an overlay calls it so Escape reaches the overlay.
func (m *Model) stopFiltering() {
	if !m.filtering {
		return
	}
	m.filtering = false
	m.filter.Blur()
}

func (m *Model) setQuery(query string) {
	m.query = query
	m.relayout()
}
