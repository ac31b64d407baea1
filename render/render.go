package render

import (
	"github.com/jsphweid/pianoroll/model"
	"github.com/jsphweid/pianoroll/normalize"
	"github.com/jsphweid/pianoroll/svg"
)

const (
	NoteClass      = "note-rectangle"
	SelectionClass = "selection-rectangle"
	LayerClass     = "note-layer"
	RowsClass      = "pitch-rows"
	RowClass       = "pitch-row"
)

// Render draws c into s, replacing whatever s held. The surface's
// coordinate system is the unit square, so nothing has to be redrawn when
// the container is resized. An invalid surface is left alone and an empty
// chunk leaves a valid, empty surface.
func Render(s *svg.Surface, c model.Chunk) normalize.Layout {
	return RenderWith(s, c, DefaultColormap)
}

func RenderWith(s *svg.Surface, c model.Chunk, colors Colormap) normalize.Layout {
	layout := normalize.Normalize(c)
	if !s.Valid() {
		return layout
	}

	s.Clear()
	s.SetViewBox(0, 0, 1, 1)
	if c.Empty() {
		return layout
	}

	s.Append(drawRows(layout))

	notes := svg.NewElement("g", LayerClass)
	for _, r := range layout.Rects {
		notes.Append(svg.NewRect(NoteClass, r).
			Set("fill", colors.Fill(r.Velocity)).
			Set("stroke", noteEdgeColor).
			Set("stroke-width", "0.001").
			Set("data-index", itoa(r.Index)))
	}
	s.Append(notes)

	return layout
}

func drawRows(l normalize.Layout) *svg.Element {
	rows := svg.NewElement("g", RowsClass)
	for pitch := l.PitchMax; pitch >= l.PitchMin; pitch-- {
		fill := whiteKeyColor
		if IsBlackKey(pitch) {
			fill = blackKeyColor
		}
		row := svg.NewRect(RowClass, model.NormalizedRect{
			X:      0,
			Y:      l.RowY(pitch),
			Width:  1,
			Height: l.RowHeight,
			Index:  -1,
			Pitch:  pitch,
		})
		row.Set("fill", fill).
			Set("stroke", rowLineColor).
			Set("stroke-width", "0.001")
		rows.Append(row)
	}
	return rows
}
