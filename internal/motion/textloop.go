// Package motion holds the small cosmetic animations of the portfolio page:
// a rotating caption, a staggered text reveal and the magnetic pull on the
// contact links. Each one is driven by tea.Tick messages tagged with an
// instance id and a sequence number so stale ticks are dropped.
package motion

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultLoopInterval is how long each TextLoop entry stays on screen.
const DefaultLoopInterval = 2 * time.Second

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// LoopTickMsg advances a TextLoop.
type LoopTickMsg struct {
	id  int
	seq int
}

// TextLoop cycles through a fixed list of strings.
type TextLoop struct {
	Interval time.Duration
	// OnIndexChange, when set, is called with every new index.
	OnIndexChange func(int)

	items   []string
	index   int
	id      int
	seq     int
	running bool
}

// NewTextLoop returns a stopped loop over items.
func NewTextLoop(items ...string) TextLoop {
	return TextLoop{
		Interval: DefaultLoopInterval,
		items:    append([]string(nil), items...),
		id:       nextID(),
	}
}

func (l TextLoop) ID() int { return l.id }

func (l TextLoop) Index() int { return l.index }

func (l TextLoop) Running() bool { return l.running }

// View returns the current entry.
func (l TextLoop) View() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.index]
}

// Start begins cycling. Loops with fewer than two entries never tick.
func (l *TextLoop) Start() tea.Cmd {
	if len(l.items) < 2 {
		return nil
	}
	l.running = true
	l.seq++
	return l.tick()
}

// Stop halts the loop. Ticks already in flight are ignored.
func (l *TextLoop) Stop() {
	l.running = false
	l.seq++
}

// Update handles LoopTickMsg for this loop.
func (l TextLoop) Update(msg tea.Msg) (TextLoop, tea.Cmd) {
	tick, ok := msg.(LoopTickMsg)
	if !ok || tick.id != l.id || tick.seq != l.seq || !l.running {
		return l, nil
	}
	l.index = (l.index + 1) % len(l.items)
	if l.OnIndexChange != nil {
		l.OnIndexChange(l.index)
	}
	return l, l.tick()
}

func (l TextLoop) tick() tea.Cmd {
	id, seq := l.id, l.seq
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultLoopInterval
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return LoopTickMsg{id: id, seq: seq}
	})
}
