// Package events is the application-wide source of global key and pointer
// press events.
//
// Components that need to observe input outside their own part of the view
// (an open dialog watching for Escape or for a press outside its content)
// register a listener and get back a release function. Registration is a
// scoped acquisition: the owner must call release on every path that ends its
// interest, and release is safe to call more than once.
//
// Dispatch walks a snapshot of the listeners, newest first, and stops at the
// first listener that reports the event as handled. A listener released while
// a dispatch is in flight is skipped for the rest of that dispatch, so a
// listener that closes its owner cannot fire again on the same event.
package events

import tea "github.com/charmbracelet/bubbletea"

// KeyListener observes a key press. It returns true when it consumed the key.
type KeyListener func(tea.KeyMsg) bool

// PressListener observes a pointer press. It returns true when it consumed
// the press.
type PressListener func(tea.MouseMsg) bool

type registration struct {
	live bool
}

type keyEntry struct {
	reg *registration
	fn  KeyListener
}

type pressEntry struct {
	reg *registration
	fn  PressListener
}

// Bus fans global input out to registered listeners. The zero value is ready
// to use. A Bus belongs to one Bubble Tea program and is only touched from its
// update loop, so it carries no locks.
type Bus struct {
	keys    []keyEntry
	presses []pressEntry
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// OnKey registers fn for every key press until the returned release is called.
func (b *Bus) OnKey(fn KeyListener) (release func()) {
	if b == nil || fn == nil {
		return func() {}
	}
	reg := &registration{live: true}
	b.keys = append(b.keys, keyEntry{reg: reg, fn: fn})
	return func() {
		if !reg.live {
			return
		}
		reg.live = false
		b.keys = removeKey(b.keys, reg)
	}
}

// OnPress registers fn for every pointer press until release is called.
func (b *Bus) OnPress(fn PressListener) (release func()) {
	if b == nil || fn == nil {
		return func() {}
	}
	reg := &registration{live: true}
	b.presses = append(b.presses, pressEntry{reg: reg, fn: fn})
	return func() {
		if !reg.live {
			return
		}
		reg.live = false
		b.presses = removePress(b.presses, reg)
	}
}

// DispatchKey delivers msg to the key listeners and reports whether one of
// them consumed it.
func (b *Bus) DispatchKey(msg tea.KeyMsg) bool {
	if b == nil || len(b.keys) == 0 {
		return false
	}
	snapshot := append([]keyEntry(nil), b.keys...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		entry := snapshot[i]
		if !entry.reg.live {
			continue
		}
		if entry.fn(msg) {
			return true
		}
	}
	return false
}

// DispatchPress delivers a pointer press to the press listeners and reports
// whether one of them consumed it. Messages that are not presses, and wheel
// motion, are ignored.
func (b *Bus) DispatchPress(msg tea.MouseMsg) bool {
	if b == nil || len(b.presses) == 0 || !IsPointerPress(msg) {
		return false
	}
	snapshot := append([]pressEntry(nil), b.presses...)
	for i := len(snapshot) - 1; i >= 0; i-- {
		entry := snapshot[i]
		if !entry.reg.live {
			continue
		}
		if entry.fn(msg) {
			return true
		}
	}
	return false
}

// KeyListeners returns the number of registered key listeners.
func (b *Bus) KeyListeners() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// PressListeners returns the number of registered press listeners.
func (b *Bus) PressListeners() int {
	if b == nil {
		return 0
	}
	return len(b.presses)
}

// IsPointerPress reports whether msg is a button press. Wheel events arrive
// as presses in Bubble Tea but are scrolling, not pressing.
func IsPointerPress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight, tea.MouseButtonNone:
		return false
	}
	return true
}

func removeKey(entries []keyEntry, reg *registration) []keyEntry {
	out := entries[:0]
	for _, entry := range entries {
		if entry.reg != reg {
			out = append(out, entry)
		}
	}
	return out
}

func removePress(entries []pressEntry, reg *registration) []pressEntry {
	out := entries[:0]
	for _, entry := range entries {
		if entry.reg != reg {
			out = append(out, entry)
		}
	}
	return out
}
