package overlay

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arniber21/portfolio/internal/events"
	"github.com/arniber21/portfolio/internal/geom"
)

type liveRegion struct {
	rect geom.Rect
	ok   bool
	hits int
}

func (r *liveRegion) provider() RegionFunc {
	return func() (geom.Rect, bool) {
		r.hits++
		return r.rect, r.ok
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func escape() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

func newFixture(t *testing.T) (*Controller, *events.Bus, *ScrollLock, *liveRegion) {
	t.Helper()
	bus := events.NewBus()
	lock := NewScrollLock()
	region := &liveRegion{rect: geom.Rect{X: 10, Y: 5, W: 20, H: 8}, ok: true}
	c := New(bus, lock, WithOwnerID("project-1"), WithRegion(region.provider()))
	return c, bus, lock, region
}

func assertReleased(t *testing.T, c *Controller, bus *events.Bus, lock *ScrollLock) {
	t.Helper()
	assert.Equal(t, Closed, c.State())
	assert.False(t, lock.Suspended(), "scroll lock leaked")
	assert.Zero(t, bus.KeyListeners(), "key listener leaked")
	assert.Zero(t, bus.PressListeners(), "press listener leaked")
}

func TestStartsClosed(t *testing.T) {
	c, bus, lock, _ := newFixture(t)
	assertReleased(t, c, bus, lock)
	assert.Equal(t, "project-1", c.OwnerID())
}

func TestOpenAcquires(t *testing.T) {
	c, bus, lock, _ := newFixture(t)
	c.Open()
	c.Open()

	assert.True(t, c.IsOpen())
	assert.True(t, lock.Suspended())
	assert.Equal(t, 1, lock.Holders())
	assert.Equal(t, 1, bus.KeyListeners())
	assert.Equal(t, 1, bus.PressListeners())
}

func TestEveryClosePathReleases(t *testing.T) {
	paths := map[CloseReason]func(t *testing.T, c *Controller, bus *events.Bus){
		ReasonCloseControl: func(t *testing.T, c *Controller, _ *events.Bus) {
			require.NoError(t, c.CloseControl().Activate())
		},
		ReasonOutsidePress: func(t *testing.T, _ *Controller, bus *events.Bus) {
			require.True(t, bus.DispatchPress(press(0, 0)))
		},
		ReasonEscape: func(t *testing.T, _ *Controller, bus *events.Bus) {
			require.True(t, bus.DispatchKey(escape()))
		},
		ReasonTeardown: func(t *testing.T, c *Controller, _ *events.Bus) {
			c.Teardown()
		},
	}

	for reason, closeFn := range paths {
		t.Run(string(reason), func(t *testing.T) {
			bus := events.NewBus()
			lock := NewScrollLock()
			region := &liveRegion{rect: geom.Rect{X: 10, Y: 5, W: 20, H: 8}, ok: true}
			var got []CloseReason
			c := New(bus, lock, WithRegion(region.provider()), WithOnChange(func(open bool, r CloseReason) {
				if !open {
					got = append(got, r)
				}
			}))

			for i := 0; i < 3; i++ {
				require.NoError(t, c.Trigger().Activate())
				require.True(t, lock.Suspended())
				closeFn(t, c, bus)
				assertReleased(t, c, bus, lock)
			}
			assert.Equal(t, []CloseReason{reason, reason, reason}, got)
		})
	}
}

func TestOutsidePressUsesLiveRegion(t *testing.T) {
	c, bus, lock, region := newFixture(t)
	c.Open()

	assert.False(t, bus.DispatchPress(press(12, 6)), "inside press passes through")
	assert.True(t, c.IsOpen())

	region.rect = geom.Rect{X: 40, Y: 5, W: 10, H: 4}
	assert.True(t, bus.DispatchPress(press(12, 6)), "region moved away from the press")
	assertReleased(t, c, bus, lock)
	assert.Equal(t, 2, region.hits)
}

func TestOutsidePressCorrectness(t *testing.T) {
	box := geom.Rect{X: 10, Y: 5, W: 20, H: 8}
	tests := []struct {
		name   string
		x, y   int
		closes bool
	}{
		{name: "center", x: 20, y: 9, closes: false},
		{name: "top left cell", x: 10, y: 5, closes: false},
		{name: "bottom right cell", x: 29, y: 12, closes: false},
		{name: "left", x: 9, y: 9, closes: true},
		{name: "right", x: 30, y: 9, closes: true},
		{name: "above", x: 20, y: 4, closes: true},
		{name: "below", x: 20, y: 13, closes: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bus := events.NewBus()
			c := New(bus, NewScrollLock(), WithRegion(func() (geom.Rect, bool) { return box, true }))
			c.Open()
			bus.DispatchPress(press(tt.x, tt.y))
			assert.Equal(t, tt.closes, !c.IsOpen())
		})
	}
}

func TestPressWithoutRenderedRegionKeepsOpen(t *testing.T) {
	c, bus, _, region := newFixture(t)
	region.ok = false
	c.Open()

	assert.False(t, bus.DispatchPress(press(0, 0)))
	assert.True(t, c.IsOpen())
}

func TestEscapeIdempotence(t *testing.T) {
	c, bus, lock, _ := newFixture(t)
	closes := 0
	c.onChange = func(open bool, _ CloseReason) {
		if !open {
			closes++
		}
	}

	assert.False(t, bus.DispatchKey(escape()), "escape while closed is ignored")
	assert.Zero(t, closes)

	c.Open()
	assert.True(t, bus.DispatchKey(escape()))
	assert.False(t, bus.DispatchKey(escape()))
	assert.Equal(t, 1, closes)
	assertReleased(t, c, bus, lock)
}

func TestNonEscapeKeysPassThrough(t *testing.T) {
	c, bus, _, _ := newFixture(t)
	c.Open()
	assert.False(t, bus.DispatchKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")}))
	assert.True(t, c.IsOpen())
}

func TestTwoOverlaysDoNotReleaseEachOther(t *testing.T) {
	bus := events.NewBus()
	lock := NewScrollLock()
	a := New(bus, lock)
	b := New(bus, lock)
	require.NotEqual(t, a.OwnerID(), b.OwnerID())

	a.Open()
	b.Open()
	b.Close()
	assert.True(t, lock.Suspended(), "a still holds the lock")
	a.Close()
	assert.False(t, lock.Suspended())
}

func TestDetachedPartsFailLoudly(t *testing.T) {
	var c *Controller
	assert.True(t, errors.Is(c.Trigger().Activate(), ErrNoController))
	assert.True(t, errors.Is(c.CloseControl().Activate(), ErrNoController))
	_, err := c.Content().Render("body")
	assert.ErrorIs(t, err, ErrNoController)
	_, err = c.Title().Render("title")
	assert.ErrorIs(t, err, ErrNoController)
	_, err = Trigger{}.OwnerID()
	assert.ErrorIs(t, err, ErrNoController)

	c.Open()
	c.Close()
	c.Teardown()
	assert.Equal(t, Closed, c.State())
}

func TestContentRendersOnlyWhileOpen(t *testing.T) {
	c, _, _, _ := newFixture(t)
	body, err := c.Content().Render("details")
	require.NoError(t, err)
	assert.Empty(t, body)

	c.Open()
	body, err = c.Content().Render("details")
	require.NoError(t, err)
	assert.Equal(t, "details", body)

	zoneID, err := c.Content().ZoneID()
	require.NoError(t, err)
	assert.Equal(t, "dialog-project-1", zoneID)
}

func TestScrollBalanceOverRandomSequences(t *testing.T) {
	c, bus, lock, _ := newFixture(t)
	steps := []func(){
		c.Open,
		c.Close,
		c.Teardown,
		func() { bus.DispatchKey(escape()) },
		func() { bus.DispatchPress(press(0, 0)) },
		func() { bus.DispatchPress(press(15, 7)) },
	}
	seq := []int{0, 0, 3, 3, 0, 5, 4, 0, 1, 2, 0, 2, 0, 4, 0, 1}
	for _, i := range seq {
		steps[i]()
		assert.Equal(t, c.IsOpen(), lock.Suspended())
	}
	c.Teardown()
	assertReleased(t, c, bus, lock)
}
