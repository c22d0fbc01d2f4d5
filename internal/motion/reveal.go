package motion

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Per is the unit a Reveal uncovers per step.
type Per int

const (
	PerChar Per = iota
	PerWord
	PerLine
)

// Stagger returns the delay between segments for p.
func (p Per) Stagger() time.Duration {
	switch p {
	case PerWord:
		return 50 * time.Millisecond
	case PerLine:
		return 100 * time.Millisecond
	default:
		return 30 * time.Millisecond
	}
}

// RevealTickMsg uncovers the next segment of a Reveal.
type RevealTickMsg struct {
	id  int
	seq int
}

// Reveal uncovers text one segment at a time. Hidden segments are rendered
// as blanks of the same width so the surrounding layout does not shift.
type Reveal struct {
	per      Per
	segments []string
	shown    int
	id       int
	seq      int
}

// NewReveal splits text into segments and starts fully hidden.
func NewReveal(text string, per Per) Reveal {
	return Reveal{per: per, segments: split(text, per), id: nextID()}
}

// Start restarts the reveal from nothing.
func (r *Reveal) Start() tea.Cmd {
	r.shown = 0
	r.seq++
	if len(r.segments) == 0 {
		return nil
	}
	return r.tick()
}

// Finish shows everything immediately.
func (r *Reveal) Finish() {
	r.shown = len(r.segments)
	r.seq++
}

func (r Reveal) Done() bool { return r.shown >= len(r.segments) }

func (r Reveal) Update(msg tea.Msg) (Reveal, tea.Cmd) {
	tick, ok := msg.(RevealTickMsg)
	if !ok || tick.id != r.id || tick.seq != r.seq || r.Done() {
		return r, nil
	}
	r.shown++
	if r.Done() {
		return r, nil
	}
	return r, r.tick()
}

func (r Reveal) View() string {
	var b strings.Builder
	for i, seg := range r.segments {
		if i < r.shown || isSpace(seg) {
			b.WriteString(seg)
			continue
		}
		b.WriteString(blank(seg))
	}
	return b.String()
}

func (r Reveal) tick() tea.Cmd {
	id, seq := r.id, r.seq
	return tea.Tick(r.per.Stagger(), func(time.Time) tea.Msg {
		return RevealTickMsg{id: id, seq: seq}
	})
}

// split keeps separators as their own segments so View can rejoin them.
func split(text string, per Per) []string {
	if text == "" {
		return nil
	}
	switch per {
	case PerLine:
		lines := strings.SplitAfter(text, "\n")
		if lines[len(lines)-1] == "" {
			lines = lines[:len(lines)-1]
		}
		return lines
	case PerWord:
		var out []string
		var cur strings.Builder
		inSpace := false
		for i, r := range text {
			space := unicode.IsSpace(r)
			if i > 0 && space != inSpace {
				out = append(out, cur.String())
				cur.Reset()
			}
			inSpace = space
			cur.WriteRune(r)
		}
		return append(out, cur.String())
	default:
		out := make([]string, 0, len(text))
		for _, r := range text {
			out = append(out, string(r))
		}
		return out
	}
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

func blank(seg string) string {
	trailing := strings.HasSuffix(seg, "\n")
	out := strings.Repeat(" ", lipgloss.Width(strings.TrimSuffix(seg, "\n")))
	if trailing {
		out += "\n"
	}
	return out
}
