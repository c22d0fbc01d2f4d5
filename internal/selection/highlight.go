package selection

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/arniber21/portfolio/internal/geom"
)

const (
	// DefaultFPS is the frame rate highlight springs are stepped at.
	DefaultFPS = 60
	// DefaultFrequency is the spring's angular frequency. With critical
	// damping the highlight settles in roughly a third of a second.
	DefaultFrequency = 12.0
	// DefaultDamping of 1 is critical damping: no overshoot.
	DefaultDamping = 1.0

	settleEpsilon = 0.05
)

// Highlight is the single movable indicator of a tracker. It interpolates
// position and size toward the active item's box with a spring instead of
// jumping between items.
type Highlight struct {
	spring  harmonica.Spring
	pos     [4]float64
	vel     [4]float64
	target  geom.Rect
	visible bool
	moving  bool
}

// NewHighlight returns a hidden highlight whose spring is stepped at fps
// frames per second.
func NewHighlight(fps int, frequency, damping float64) *Highlight {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Highlight{spring: harmonica.NewSpring(harmonica.FPS(fps), frequency, damping)}
}

// MoveTo retargets the highlight. A hidden highlight appears at r directly;
// a visible one animates toward it on subsequent ticks.
func (h *Highlight) MoveTo(r geom.Rect) {
	h.target = r
	if !h.visible {
		h.visible = true
		h.pos = rectToVec(r)
		h.vel = [4]float64{}
		h.moving = false
		return
	}
	h.moving = h.pos != rectToVec(r)
}

// Hide removes the highlight. The next MoveTo snaps instead of animating.
func (h *Highlight) Hide() {
	h.visible = false
	h.moving = false
	h.vel = [4]float64{}
}

// Tick advances the spring one frame and reports whether the highlight is
// still moving.
func (h *Highlight) Tick() bool {
	if !h.visible || !h.moving {
		return false
	}
	target := rectToVec(h.target)
	settled := true
	for i := range h.pos {
		h.pos[i], h.vel[i] = h.spring.Update(h.pos[i], h.vel[i], target[i])
		if math.Abs(h.pos[i]-target[i]) > settleEpsilon || math.Abs(h.vel[i]) > settleEpsilon {
			settled = false
		}
	}
	if settled {
		h.pos = target
		h.vel = [4]float64{}
		h.moving = false
	}
	return h.moving
}

// Moving reports whether the highlight has not yet reached its target.
func (h *Highlight) Moving() bool {
	return h.visible && h.moving
}

// Visible reports whether a highlight should be drawn at all.
func (h *Highlight) Visible() bool {
	return h.visible
}

// Rect returns the current interpolated box rounded to whole cells.
func (h *Highlight) Rect() (geom.Rect, bool) {
	if !h.visible {
		return geom.Rect{}, false
	}
	return geom.Rect{
		X: int(math.Round(h.pos[0])),
		Y: int(math.Round(h.pos[1])),
		W: int(math.Round(h.pos[2])),
		H: int(math.Round(h.pos[3])),
	}, true
}

// Target returns the box the highlight is heading to.
func (h *Highlight) Target() geom.Rect {
	return h.target
}

func rectToVec(r geom.Rect) [4]float64 {
	return [4]float64{float64(r.X), float64(r.Y), float64(r.W), float64(r.H)}
}
