// page.go lays the portfolio out as a single scrolling column.
//
// buildPage produces the static lines plus the bookkeeping the interaction
// layer needs: where each section starts, which lines belong to which list
// item, and where the dynamic rows (intro reveal, role loop, link pills) go.
// Coordinates recorded here are page coordinates: x is measured from the
// first column after the gutter, y is the page line. Screen coordinates are
// derived from them with the current layout and viewport offset.
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arniber21/portfolio/internal/content"
)

// span is the range of page lines one list item occupies.
type span struct {
	id         string
	start, end int // [start, end)
}

// linkSlot is one pill in the connect row.
type linkSlot struct {
	id     string
	label  string
	target string
	x, w   int
}

type page struct {
	lines    []string
	width    int
	sections map[content.Section]int
	spans    map[content.Section][]span

	introLine int
	roleLine  int
	emailLine int
	linksLine int
	links     []linkSlot
}

// listSections are the sections whose items are tracked with a hover
// highlight, in page order.
var listSections = []content.Section{
	content.SectionProjects,
	content.SectionWork,
	content.SectionWriting,
	content.SectionConnect,
}

type pageBuilder struct {
	p     page
	st    styles
	width int
}

func (b *pageBuilder) add(lines ...string) {
	b.p.lines = append(b.p.lines, lines...)
}

func (b *pageBuilder) blank() {
	b.add("")
}

func (b *pageBuilder) wrapped(style lipgloss.Style, text string) {
	for _, line := range wrapLines(text, b.width) {
		b.add(style.Render(line))
	}
}

func (b *pageBuilder) section(s content.Section) {
	if len(b.p.lines) > 0 {
		b.blank()
	}
	b.p.sections[s] = len(b.p.lines)
	b.add(b.st.heading.Render(s.Title()))
	b.blank()
}

func (b *pageBuilder) item(s content.Section, id string, render func()) {
	start := len(b.p.lines)
	render()
	b.p.spans[s] = append(b.p.spans[s], span{id: id, start: start, end: len(b.p.lines)})
}

// buildPage lays out the visible portfolio at width columns.
func (m *Model) buildPage(width int) page {
	b := &pageBuilder{
		st:    m.styles,
		width: max(1, width),
		p: page{
			width:     width,
			sections:  map[content.Section]int{},
			spans:     map[content.Section][]span{},
			introLine: -1,
			roleLine:  -1,
			emailLine: -1,
			linksLine: -1,
		},
	}
	p := m.portfolio

	b.p.sections[content.SectionAbout] = 0
	b.p.introLine = len(b.p.lines)
	b.add("")
	if len(p.Roles) > 0 {
		b.p.roleLine = len(b.p.lines)
		b.add("")
	}
	b.blank()
	if p.Tagline != "" {
		b.wrapped(b.st.text, p.Tagline)
		b.blank()
	}
	b.wrapped(b.st.muted, p.About)

	b.section(content.SectionProjects)
	projects := m.filterProjects(m.visibleProjects())
	if len(projects) == 0 {
		b.add(b.st.subtle.Render(m.emptyListText()))
	}
	for i, project := range projects {
		if i > 0 {
			b.blank()
		}
		project := project
		b.item(content.SectionProjects, project.ID, func() {
			title := b.st.title.Render(project.Name)
			if project.Period != "" {
				title += b.st.subtle.Render("  " + project.Period)
			}
			b.add(truncate(title, b.width))
			b.wrapped(b.st.muted, project.Description)
			if len(project.Tags) > 0 {
				b.wrapped(b.st.subtle, strings.Join(project.Tags, " · "))
			}
			for _, award := range project.Awards {
				b.add(truncate(b.st.award.Render("★ "+award), b.width))
			}
		})
	}
	if !m.showAllProjects && len(p.FeaturedProjects()) < len(p.Projects) {
		b.blank()
		b.add(b.st.subtle.Render("Press a to show all projects"))
	}

	b.section(content.SectionWork)
	work := m.filterWork(p.Work)
	if len(work) == 0 {
		b.add(b.st.subtle.Render(m.emptyListText()))
	}
	for i, job := range work {
		if i > 0 {
			b.blank()
		}
		job := job
		b.item(content.SectionWork, job.ID, func() {
			b.add(truncate(b.st.title.Render(job.Title), b.width))
			meta := []string{job.Company, job.Span()}
			if job.Location != "" {
				meta = append(meta, job.Location)
			}
			b.wrapped(b.st.subtle, strings.Join(meta, " · "))
			b.wrapped(b.st.muted, job.Description)
		})
	}

	b.section(content.SectionEducation)
	for i, edu := range p.Education {
		if i > 0 {
			b.blank()
		}
		b.add(truncate(b.st.title.Render(edu.Institution), b.width))
		b.wrapped(b.st.text, edu.Degree)
		meta := []string{edu.Span()}
		if edu.Location != "" {
			meta = append(meta, edu.Location)
		}
		if gpa := strings.TrimSpace(edu.GPA); gpa != "" {
			meta = append(meta, "GPA "+gpa)
		}
		b.wrapped(b.st.subtle, strings.Join(meta, " · "))
		b.wrapped(b.st.muted, edu.Description)
		for _, activity := range edu.Activities {
			b.wrapped(b.st.muted, "• "+activity)
		}
	}

	b.section(content.SectionWriting)
	posts := m.filterPosts(p.Posts)
	if len(posts) == 0 {
		b.add(b.st.subtle.Render(m.emptyListText()))
	}
	for i, post := range posts {
		if i > 0 {
			b.blank()
		}
		post := post
		b.item(content.SectionWriting, post.UID, func() {
			b.wrapped(b.st.title, post.Title)
			b.wrapped(b.st.muted, post.Description)
		})
	}

	b.section(content.SectionConnect)
	if p.Email != "" && m.matchesFilter("email "+p.Email) {
		b.item(content.SectionConnect, emailID, func() {
			b.p.emailLine = len(b.p.lines)
			b.add("")
		})
	}
	links := m.filterLinks(p.Links)
	if len(links) > 0 {
		b.p.linksLine = len(b.p.lines)
		x := 0
		for _, link := range links {
			w := lipgloss.Width(link.Label) + 2
			b.p.links = append(b.p.links, linkSlot{id: link.Label, label: link.Label, target: link.Link, x: x + LinkMaxShift, w: w})
			x += w + 2*LinkMaxShift
		}
		b.add("", "")
		for _, slot := range b.p.links {
			b.p.spans[content.SectionConnect] = append(b.p.spans[content.SectionConnect], span{id: slot.id, start: b.p.linksLine, end: b.p.linksLine + 1})
		}
	}
	return b.p
}

const emailID = "email"

func (m *Model) visibleProjects() []content.Project {
	if m.showAllProjects {
		return m.portfolio.Projects
	}
	featured := m.portfolio.FeaturedProjects()
	if len(featured) == 0 {
		return m.portfolio.Projects
	}
	return featured
}

func (m *Model) emptyListText() string {
	if m.query != "" {
		return "Nothing matches “" + m.query + "”"
	}
	return "Nothing here yet"
}

// itemAt returns the list item under page cell (x, y).
func (p page) itemAt(s content.Section, x, y int) (string, bool) {
	if s == content.SectionConnect {
		if y == p.linksLine {
			for _, slot := range p.links {
				if x >= slot.x && x < slot.x+slot.w {
					return slot.id, true
				}
			}
			return "", false
		}
	}
	for _, sp := range p.spans[s] {
		if s == content.SectionConnect && sp.start == p.linksLine {
			continue
		}
		if y >= sp.start && y < sp.end {
			return sp.id, true
		}
	}
	return "", false
}

// sectionAt returns the section whose heading is at or above line y.
func (p page) sectionAt(y int) content.Section {
	current := content.SectionAbout
	for _, s := range content.Sections() {
		start, ok := p.sections[s]
		if ok && start <= y {
			current = s
		}
	}
	return current
}

func (p page) link(id string) (linkSlot, bool) {
	for _, slot := range p.links {
		if slot.id == id {
			return slot, true
		}
	}
	return linkSlot{}, false
}
