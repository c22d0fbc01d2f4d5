// Package content holds the portfolio tables: projects, work, education,
// writing and contact links. A copy is embedded in the binary and can be
// replaced by a JSON file of the same shape.
package content

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/arniber21/portfolio/internal/logging"
)

//go:embed default.json
var defaultJSON []byte

var log = logging.New("content")

var (
	ErrUnknownSection = errors.New("unknown section")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrMissingID      = errors.New("missing id")
)

type Project struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	Video       string   `json:"video,omitempty"`
	Period      string   `json:"period,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Awards      []string `json:"awards,omitempty"`
	BlogSlug    string   `json:"blog_slug,omitempty"`
}

type WorkExperience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Title       string `json:"title"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Link        string `json:"link"`
	DetailsSlug string `json:"details_slug"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

// Span is the "start - end" caption.
func (w WorkExperience) Span() string {
	return span(w.Start, w.End)
}

type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Location    string   `json:"location,omitempty"`
	GPA         string   `json:"gpa,omitempty"`
	Description string   `json:"description,omitempty"`
	Activities  []string `json:"activities,omitempty"`
}

func (e Education) Span() string {
	return span(e.Start, e.End)
}

type BlogPost struct {
	UID         string `json:"uid"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type SocialLink struct {
	Label string `json:"label"`
	Link  string `json:"link"`
}

// Portfolio is the whole site.
type Portfolio struct {
	Name      string           `json:"name"`
	Tagline   string           `json:"tagline"`
	Roles     []string         `json:"roles"`
	About     string           `json:"about"`
	Email     string           `json:"email"`
	Projects  []Project        `json:"projects"`
	Work      []WorkExperience `json:"work"`
	Education []Education      `json:"education"`
	Posts     []BlogPost       `json:"posts"`
	Links     []SocialLink     `json:"links"`
}

// Default returns the embedded portfolio.
func Default() (Portfolio, error) {
	p, err := Parse(defaultJSON)
	if err != nil {
		return Portfolio{}, fmt.Errorf("embedded content: %w", err)
	}
	return p, nil
}

// Load reads a portfolio file. An empty path loads the embedded copy.
func Load(path string) (Portfolio, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Portfolio{}, fmt.Errorf("read content: %w", err)
	}
	p, err := Parse(data)
	if err != nil {
		return Portfolio{}, fmt.Errorf("%s: %w", path, err)
	}
	log.Debug("loaded content", "path", path, "projects", len(p.Projects), "posts", len(p.Posts))
	return p, nil
}

// Parse decodes and validates a portfolio document.
func Parse(data []byte) (Portfolio, error) {
	var p Portfolio
	if err := json.Unmarshal(data, &p); err != nil {
		return Portfolio{}, fmt.Errorf("parse content: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Portfolio{}, err
	}
	return p, nil
}

// Validate checks that every item id is present and unique within its table.
// The selection trackers key on these ids.
func (p Portfolio) Validate() error {
	tables := []struct {
		name string
		ids  []string
	}{
		{"projects", collect(p.Projects, func(v Project) string { return v.ID })},
		{"work", collect(p.Work, func(v WorkExperience) string { return v.ID })},
		{"education", collect(p.Education, func(v Education) string { return v.ID })},
		{"posts", collect(p.Posts, func(v BlogPost) string { return v.UID })},
		{"links", collect(p.Links, func(v SocialLink) string { return v.Label })},
	}
	for _, table := range tables {
		seen := make(map[string]struct{}, len(table.ids))
		for i, id := range table.ids {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%s[%d]: %w", table.name, i, ErrMissingID)
			}
			if _, ok := seen[id]; ok {
				return fmt.Errorf("%s: %w %q", table.name, ErrDuplicateID, id)
			}
			seen[id] = struct{}{}
		}
	}
	return nil
}

// FeaturedProjects returns the projects flagged featured, in order.
func (p Portfolio) FeaturedProjects() []Project {
	out := make([]Project, 0, len(p.Projects))
	for _, project := range p.Projects {
		if project.Featured {
			out = append(out, project)
		}
	}
	return out
}

func (p Portfolio) ProjectByID(id string) (Project, bool) {
	for _, project := range p.Projects {
		if project.ID == id {
			return project, true
		}
	}
	return Project{}, false
}

func (p Portfolio) PostBySlug(slug string) (BlogPost, bool) {
	for _, post := range p.Posts {
		if post.UID == slug {
			return post, true
		}
	}
	return BlogPost{}, false
}

func collect[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func span(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " – " + end
}
