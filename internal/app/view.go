package app

// Viewport size in pixels. Every allowed zoom scale divides both evenly,
// so a redraw always fills the whole window.
const (
	ViewW = 1024
	ViewH = 640
)

// scales lists the allowed zoom levels, in pixels per tile.
var scales = []int{1, 2, 4, 8, 16}

// normalizeScale snaps a requested scale to the nearest allowed level at
// or below it.
func normalizeScale(scale int) int {
	best := scales[0]
	for _, s := range scales {
		if s <= scale {
			best = s
		}
	}
	return best
}
