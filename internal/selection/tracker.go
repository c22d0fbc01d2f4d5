// Package selection tracks which one of a set of sibling items is active and
// drives the single animated highlight that marks it.
//
// A Tracker is configured for exactly one trigger mode. In click mode an
// item becomes active when it is clicked and stays active until another item
// is clicked. In hover mode pointer-enter activates an item and pointer-leave
// clears it; events are applied in arrival order, so the most recent one wins.
//
// The tracker owns the active id; items never write it directly. Callers feed
// it input through Click, Enter and Leave (or SetActive for keyboard
// navigation) and read it back with Active.
package selection

import (
	"github.com/arniber21/portfolio/internal/geom"
)

// Mode selects how items become active.
type Mode int

const (
	// ModeClick activates on click; activation is sticky.
	ModeClick Mode = iota
	// ModeHover activates on pointer-enter and clears on pointer-leave.
	ModeHover
)

func (m Mode) String() string {
	switch m {
	case ModeClick:
		return "click"
	case ModeHover:
		return "hover"
	default:
		return "unknown"
	}
}

// Item is one candidate in a tracker. IDs are unique within a tracker.
type Item struct {
	ID      string
	Content string
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithDefault sets the initially active id.
func WithDefault(id string) Option {
	return func(t *Tracker) {
		t.active = id
		t.hasActive = true
	}
}

// WithOnChange registers a callback invoked with every new active value.
// ok is false when the active id was cleared.
func WithOnChange(fn func(id string, ok bool)) Option {
	return func(t *Tracker) {
		t.onChange = fn
	}
}

// WithSpring overrides the highlight spring parameters.
func WithSpring(fps int, frequency, damping float64) Option {
	return func(t *Tracker) {
		t.highlight = NewHighlight(fps, frequency, damping)
	}
}

// Tracker holds the active id of a set of sibling items.
type Tracker struct {
	mode      Mode
	items     []Item
	index     map[string]int
	bounds    map[string]geom.Rect
	active    string
	hasActive bool
	onChange  func(id string, ok bool)
	highlight *Highlight
}

// New returns a tracker in the given mode with no items.
func New(mode Mode, opts ...Option) *Tracker {
	t := &Tracker{
		mode:   mode,
		index:  map[string]int{},
		bounds: map[string]geom.Rect{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.highlight == nil {
		t.highlight = NewHighlight(DefaultFPS, DefaultFrequency, DefaultDamping)
	}
	return t
}

// Mode returns the tracker's trigger mode.
func (t *Tracker) Mode() Mode {
	return t.mode
}

// SetItems replaces the candidate set, keeping render order. A later item
// with an id already seen is dropped. Bounds of removed items are forgotten.
func (t *Tracker) SetItems(items []Item) {
	t.items = make([]Item, 0, len(items))
	t.index = make(map[string]int, len(items))
	for _, item := range items {
		if _, dup := t.index[item.ID]; dup {
			continue
		}
		t.index[item.ID] = len(t.items)
		t.items = append(t.items, item)
	}
	for id := range t.bounds {
		if _, ok := t.index[id]; !ok {
			delete(t.bounds, id)
		}
	}
	t.syncHighlight()
}

// Items returns the registered items in render order.
func (t *Tracker) Items() []Item {
	return t.items
}

// Index returns the render position of id, or -1.
func (t *Tracker) Index(id string) int {
	if i, ok := t.index[id]; ok {
		return i
	}
	return -1
}

// SetActive replaces the active id unconditionally and notifies the change
// callback. An id that is not registered reads back as none.
func (t *Tracker) SetActive(id string) {
	t.set(id, true)
}

// Clear sets the active id to none.
func (t *Tracker) Clear() {
	t.set("", false)
}

// Click applies a click on item id. Only click-mode trackers react.
func (t *Tracker) Click(id string) {
	if t.mode != ModeClick {
		return
	}
	t.SetActive(id)
}

// Enter applies pointer-enter on item id. Only hover-mode trackers react.
func (t *Tracker) Enter(id string) {
	if t.mode != ModeHover {
		return
	}
	t.SetActive(id)
}

// Leave applies pointer-leave on item id. Only hover-mode trackers react.
// The leave clears the active id whatever it currently is: a leave that
// arrives after the enter of a neighbour still wins.
func (t *Tracker) Leave(id string) {
	if t.mode != ModeHover {
		return
	}
	t.Clear()
}

// Active returns the active id. ok is false when nothing is active or the
// stored id does not match a registered item.
func (t *Tracker) Active() (string, bool) {
	if !t.hasActive {
		return "", false
	}
	if _, ok := t.index[t.active]; !ok {
		return "", false
	}
	return t.active, true
}

// IsActive reports whether id is the active item.
func (t *Tracker) IsActive(id string) bool {
	active, ok := t.Active()
	return ok && active == id
}

// SetBounds records where item id was laid out. The highlight follows the
// bounds of the active item, so this is also how relayout moves it.
func (t *Tracker) SetBounds(id string, r geom.Rect) {
	if _, ok := t.index[id]; !ok {
		return
	}
	t.bounds[id] = r
	if t.IsActive(id) {
		t.highlight.MoveTo(r)
	}
}

// Bounds returns the recorded box of item id.
func (t *Tracker) Bounds(id string) (geom.Rect, bool) {
	r, ok := t.bounds[id]
	return r, ok
}

// Highlight exposes the tracker's single highlight.
func (t *Tracker) Highlight() *Highlight {
	return t.highlight
}

// Tick advances the highlight animation one frame and reports whether it is
// still moving.
func (t *Tracker) Tick() bool {
	return t.highlight.Tick()
}

func (t *Tracker) set(id string, ok bool) {
	t.active = id
	t.hasActive = ok
	t.syncHighlight()
	if t.onChange != nil {
		t.onChange(id, ok)
	}
}

func (t *Tracker) syncHighlight() {
	id, ok := t.Active()
	if !ok {
		t.highlight.Hide()
		return
	}
	r, known := t.bounds[id]
	if !known {
		t.highlight.Hide()
		return
	}
	t.highlight.MoveTo(r)
}
