package motion

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/arniber21/portfolio/internal/geom"
)

const (
	DefaultMagneticIntensity = 0.6
	DefaultMagneticRange     = 100.0

	// cellAspect converts rows to column-equivalents when measuring distance;
	// terminal cells are about twice as tall as they are wide.
	cellAspect = 2.0

	magneticFrequency = 9.0
	magneticDamping   = 0.6
	magneticEpsilon   = 0.05
)

// Magnetic pulls an element toward the pointer while the pointer is within
// Range of its center, and springs it back when the pointer leaves.
type Magnetic struct {
	Intensity float64
	// Range is measured in columns.
	Range float64

	spring harmonica.Spring
	x, y   float64
	vx, vy float64
	tx, ty float64
}

// NewMagnetic returns a magnetic offset stepped at fps.
func NewMagnetic(fps int, intensity, rng float64) *Magnetic {
	if fps <= 0 {
		fps = 60
	}
	return &Magnetic{
		Intensity: intensity,
		Range:     rng,
		spring:    harmonica.NewSpring(harmonica.FPS(fps), magneticFrequency, magneticDamping),
	}
}

// Track updates the target offset for a pointer in cell (px, py) over an
// element laid out at bounds. Pointers outside Range leave the target unchanged.
func (m *Magnetic) Track(px, py int, bounds geom.Rect) {
	if m == nil || bounds.Empty() {
		return
	}
	cx, cy := bounds.Center()
	dx := float64(px) + 0.5 - cx
	dy := float64(py) + 0.5 - cy
	if math.Hypot(dx, dy*cellAspect) >= m.Range {
		return
	}
	m.tx = dx * m.Intensity
	m.ty = dy * m.Intensity
}

// Leave resets the target to no offset.
func (m *Magnetic) Leave() {
	if m == nil {
		return
	}
	m.tx, m.ty = 0, 0
}

// Tick advances one frame and reports whether the offset is still moving.
func (m *Magnetic) Tick() bool {
	if m == nil {
		return false
	}
	m.x, m.vx = m.spring.Update(m.x, m.vx, m.tx)
	m.y, m.vy = m.spring.Update(m.y, m.vy, m.ty)
	if math.Abs(m.x-m.tx) < magneticEpsilon && math.Abs(m.vx) < magneticEpsilon &&
		math.Abs(m.y-m.ty) < magneticEpsilon && math.Abs(m.vy) < magneticEpsilon {
		m.x, m.y = m.tx, m.ty
		m.vx, m.vy = 0, 0
		return false
	}
	return true
}

// Offset returns the current displacement rounded to whole cells.
func (m *Magnetic) Offset() (dx, dy int) {
	if m == nil {
		return 0, 0
	}
	return int(math.Round(m.x)), int(math.Round(m.y))
}

// Target returns the displacement the spring is heading to.
func (m *Magnetic) Target() (float64, float64) {
	if m == nil {
		return 0, 0
	}
	return m.tx, m.ty
}
