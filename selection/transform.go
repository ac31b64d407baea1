package selection

import "github.com/jsphweid/pianoroll/model"

// ToNormalized maps device coordinates into the surface's viewport. The
// surface is stretched with independent x and y scale factors, so each
// axis gets its own factor. ok is false when the box has no area.
func ToNormalized(x, y float64, box model.BoundingBox, viewWidth, viewHeight float64) (nx, ny float64, ok bool) {
	if !box.Valid() {
		return 0, 0, false
	}
	nx = (x - box.Left) * (viewWidth / box.Width)
	ny = (y - box.Top) * (viewHeight / box.Height)
	return nx, ny, true
}

// CountInRange counts rects whose x lies in [x1, x2].
func CountInRange(rects []model.NormalizedRect, x1, x2 float64) int {
	var n int
	for _, r := range rects {
		if x1 <= r.X && r.X <= x2 {
			n++
		}
	}
	return n
}
