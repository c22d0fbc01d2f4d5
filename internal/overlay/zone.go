package overlay

import (
	zone "github.com/lrstanley/bubblezone"

	"github.com/arniber21/portfolio/internal/geom"
)

// ZoneRegion reads the content region from the zone manager on every call,
// so the region tracks the last rendered frame.
func ZoneRegion(manager *zone.Manager, id string) RegionFunc {
	return func() (geom.Rect, bool) {
		if manager == nil {
			return geom.Rect{}, false
		}
		info := manager.Get(id)
		if info.IsZero() {
			return geom.Rect{}, false
		}
		return geom.FromCorners(info.StartX, info.StartY, info.EndX, info.EndY), true
	}
}
