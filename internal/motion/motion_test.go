package motion

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arniber21/portfolio/internal/geom"
)

func TestTextLoopCycles(t *testing.T) {
	var seen []int
	loop := NewTextLoop("a", "b", "c")
	loop.OnIndexChange = func(i int) { seen = append(seen, i) }

	require.NotNil(t, loop.Start())
	assert.Equal(t, "a", loop.View())

	for i := 0; i < 4; i++ {
		var cmd tea.Cmd
		loop, cmd = loop.Update(LoopTickMsg{id: loop.id, seq: loop.seq})
		assert.NotNil(t, cmd)
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)
	assert.Equal(t, "b", loop.View())
}

func TestTextLoopDropsStaleAndForeignTicks(t *testing.T) {
	loop := NewTextLoop("a", "b")
	loop.Start()
	staleSeq := loop.seq
	loop.Start()

	loop, cmd := loop.Update(LoopTickMsg{id: loop.id, seq: staleSeq})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, loop.Index())

	loop, cmd = loop.Update(LoopTickMsg{id: loop.id + 1000, seq: loop.seq})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, loop.Index())

	loop.Stop()
	loop, cmd = loop.Update(LoopTickMsg{id: loop.id, seq: loop.seq})
	assert.Nil(t, cmd)
	assert.False(t, loop.Running())
}

func TestTextLoopSingleEntryNeverTicks(t *testing.T) {
	loop := NewTextLoop("only")
	assert.Nil(t, loop.Start())
	assert.Equal(t, "only", loop.View())
	assert.Equal(t, "", NewTextLoop().View())
}

func TestRevealPerWordKeepsLayout(t *testing.T) {
	r := NewReveal("hello big world", PerWord)
	require.NotNil(t, r.Start())
	assert.Equal(t, "               ", r.View())

	r, _ = r.Update(RevealTickMsg{id: r.id, seq: r.seq})
	assert.Equal(t, "hello          ", r.View())

	for !r.Done() {
		r, _ = r.Update(RevealTickMsg{id: r.id, seq: r.seq})
	}
	assert.Equal(t, "hello big world", r.View())
}

func TestRevealPerChar(t *testing.T) {
	r := NewReveal("abc", PerChar)
	r.Start()
	r, cmd := r.Update(RevealTickMsg{id: r.id, seq: r.seq})
	assert.NotNil(t, cmd)
	assert.Equal(t, "a  ", r.View())

	r.Finish()
	assert.True(t, r.Done())
	assert.Equal(t, "abc", r.View())

	_, cmd = r.Update(RevealTickMsg{id: r.id, seq: r.seq})
	assert.Nil(t, cmd)
}

func TestRevealPerLine(t *testing.T) {
	r := NewReveal("one\ntwo\n", PerLine)
	assert.Equal(t, []string{"one\n", "two\n"}, r.segments)
	r.Start()
	assert.Equal(t, "   \n   \n", r.View())
}

func TestStaggerDefaults(t *testing.T) {
	assert.Less(t, PerChar.Stagger(), PerWord.Stagger())
	assert.Less(t, PerWord.Stagger(), PerLine.Stagger())
}

func TestMagneticPullsWithinRange(t *testing.T) {
	m := NewMagnetic(60, 0.5, 20)
	bounds := geom.Rect{X: 10, Y: 5, W: 10, H: 1}

	m.Track(21, 5, bounds)
	tx, ty := m.Target()
	assert.InDelta(t, 3.25, tx, 1e-9)
	assert.InDelta(t, 0.0, ty, 1e-9)

	for i := 0; i < 600 && m.Tick(); i++ {
	}
	dx, dy := m.Offset()
	assert.Equal(t, 3, dx)
	assert.Equal(t, 0, dy)

	m.Leave()
	for i := 0; i < 600 && m.Tick(); i++ {
	}
	dx, dy = m.Offset()
	assert.Equal(t, 0, dx)
	assert.Equal(t, 0, dy)
}

func TestMagneticIgnoresFarPointer(t *testing.T) {
	m := NewMagnetic(60, 0.5, 5)
	m.Track(100, 40, geom.Rect{X: 0, Y: 0, W: 4, H: 1})
	tx, ty := m.Target()
	assert.Zero(t, tx)
	assert.Zero(t, ty)
	assert.False(t, m.Tick())
}

func TestMagneticNilSafe(t *testing.T) {
	var m *Magnetic
	m.Track(1, 1, geom.Rect{W: 1, H: 1})
	m.Leave()
	assert.False(t, m.Tick())
	dx, dy := m.Offset()
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}
