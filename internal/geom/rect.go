// Package geom holds the terminal-cell geometry shared by the selection
// highlight, the overlay hit-test and the motion effects.
package geom

// Rect is an axis-aligned box in terminal cells. X and Y are the top-left
// cell; W and H are the width and height in cells.
type Rect struct {
	X, Y int
	W, H int
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	if r.Empty() {
		return false
	}
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the center point of r in fractional cells.
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// FromCorners builds a rect from inclusive start and end cells, the shape
// bubblezone reports zones in.
func FromCorners(startX, startY, endX, endY int) Rect {
	if endX < startX {
		startX, endX = endX, startX
	}
	if endY < startY {
		startY, endY = endY, startY
	}
	return Rect{X: startX, Y: startY, W: endX - startX + 1, H: endY - startY + 1}
}
