package content

import (
	"fmt"
	"strings"
)

// Section is one page region of the portfolio.
type Section int

const (
	SectionAbout Section = iota
	SectionProjects
	SectionWork
	SectionEducation
	SectionWriting
	SectionConnect
)

var sectionNames = [...]string{
	SectionAbout:     "about",
	SectionProjects:  "projects",
	SectionWork:      "work",
	SectionEducation: "education",
	SectionWriting:   "writing",
	SectionConnect:   "connect",
}

// Sections lists every section in page order.
func Sections() []Section {
	return []Section{SectionAbout, SectionProjects, SectionWork, SectionEducation, SectionWriting, SectionConnect}
}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

// Title is the heading shown in the nav bar.
func (s Section) Title() string {
	name := s.String()
	if name == "" {
		return ""
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// ParseSection accepts a section name. "links" is an alias for connect and
// "posts"/"blog" for writing.
func ParseSection(value string) (Section, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "about":
		return SectionAbout, nil
	case "projects", "project":
		return SectionProjects, nil
	case "work", "experience":
		return SectionWork, nil
	case "education":
		return SectionEducation, nil
	case "writing", "posts", "blog":
		return SectionWriting, nil
	case "connect", "links":
		return SectionConnect, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownSection, value)
}

// Entry is a flattened list row used by the CLI and the filter.
type Entry struct {
	ID    string
	Title string
	Meta  string
	Body  string
}

// Entries flattens the table behind a section.
func (p Portfolio) Entries(s Section) []Entry {
	switch s {
	case SectionAbout:
		return []Entry{{ID: "about", Title: p.Name, Meta: p.Tagline, Body: p.About}}
	case SectionProjects:
		out := make([]Entry, 0, len(p.Projects))
		for _, v := range p.Projects {
			out = append(out, Entry{ID: v.ID, Title: v.Name, Meta: v.Period, Body: v.Description})
		}
		return out
	case SectionWork:
		out := make([]Entry, 0, len(p.Work))
		for _, v := range p.Work {
			out = append(out, Entry{ID: v.ID, Title: v.Title, Meta: v.Company + " · " + v.Span(), Body: v.Description})
		}
		return out
	case SectionEducation:
		out := make([]Entry, 0, len(p.Education))
		for _, v := range p.Education {
			out = append(out, Entry{ID: v.ID, Title: v.Institution, Meta: v.Degree + " · " + v.Span(), Body: v.Description})
		}
		return out
	case SectionWriting:
		out := make([]Entry, 0, len(p.Posts))
		for _, v := range p.Posts {
			out = append(out, Entry{ID: v.UID, Title: v.Title, Meta: v.Link, Body: v.Description})
		}
		return out
	case SectionConnect:
		out := make([]Entry, 0, len(p.Links)+1)
		if p.Email != "" {
			out = append(out, Entry{ID: "email", Title: "Email", Meta: "mailto:" + p.Email})
		}
		for _, v := range p.Links {
			out = append(out, Entry{ID: v.Label, Title: v.Label, Meta: v.Link})
		}
		return out
	}
	return nil
}
