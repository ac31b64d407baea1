package render

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// velocity gradient endpoints
var (
	quietColor = colorful.Color{R: 0x80 / 255.0, G: 0, B: 0x80 / 255.0}
	loudColor  = colorful.Color{R: 0, G: 1, B: 0}
)

var (
	whiteKeyColor = hex(colornames.Whitesmoke)
	blackKeyColor = hex(colornames.Gainsboro)
	rowLineColor  = hex(colornames.Lightgray)
	noteEdgeColor = hex(colornames.Black)
	SelectionFill = hex(colornames.Lightskyblue)
)

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Colormap holds one fill per MIDI velocity.
type Colormap [128]string

func NewColormap(from, to colorful.Color) Colormap {
	var m Colormap
	for i := range m {
		m[i] = from.BlendLab(to, float64(i)/float64(len(m)-1)).Clamped().Hex()
	}
	// Lab round trips can drift a unit at the ends
	m[0], m[len(m)-1] = from.Hex(), to.Hex()
	return m
}

var DefaultColormap = NewColormap(quietColor, loudColor)

func (m Colormap) Fill(velocity int) string {
	if velocity < 0 {
		velocity = 0
	}
	if velocity >= len(m) {
		velocity = len(m) - 1
	}
	return m[velocity]
}

func IsBlackKey(pitch int) bool {
	switch pitch % 12 {
	case 1, 3, 6, 8, 10:
		return true
	}
	return false
}

func itoa(i int) string {
	return fmt.Sprintf("%d", i)
}
