package model

import "math"

// NormalizedRect is one note placed in the unit square.
type NormalizedRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// note this rect was produced from
	Index    int
	Pitch    int
	Velocity int
}

func (r NormalizedRect) Right() float64 {
	return r.X + r.Width
}

// BoundingBox is a surface's on-screen box in device pixels, the same shape
// getBoundingClientRect reports.
type BoundingBox struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b BoundingBox) Valid() bool {
	return b.Width > 0 && b.Height > 0
}

// PointerEvent carries device coordinates and the box of the surface the
// event is interpreted against.
type PointerEvent struct {
	X   float64     `json:"x"`
	Y   float64     `json:"y"`
	Box BoundingBox `json:"box"`
}

// Selection is the live drag state in normalized space.
type Selection struct {
	StartX   float64 `json:"startX"`
	CurrentX float64 `json:"currentX"`
	CurrentY float64 `json:"currentY"`

	// vertical extent is pinned to one pitch row
	Y      float64 `json:"y"`
	Height float64 `json:"height"`
}

func (s Selection) X() float64 {
	return math.Min(s.StartX, s.CurrentX)
}

func (s Selection) Width() float64 {
	return math.Abs(s.CurrentX - s.StartX)
}

func (s Selection) X2() float64 {
	return s.X() + s.Width()
}
