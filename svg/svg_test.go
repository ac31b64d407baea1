package svg

import (
	"strings"
	"testing"

	"github.com/jsphweid/pianoroll/model"
	"github.com/stretchr/testify/assert"
)

func TestQueryClassInDocumentOrder(t *testing.T) {
	s := NewSurface("roll-0")
	layer := NewElement("g", "layer")
	s.Append(layer)
	layer.Append(NewRect("note", model.NormalizedRect{X: 0.1}))
	layer.Append(NewRect("note", model.NormalizedRect{X: 0.2}))
	s.Append(NewRect("note", model.NormalizedRect{X: 0.3}))

	notes := s.QueryClass("note")

	assert := assert.New(t)
	assert.Len(notes, 3)
	assert.Equal(0.1, notes[0].Rect.X)
	assert.Equal(0.2, notes[1].Rect.X)
	assert.Equal(0.3, notes[2].Rect.X)
	assert.Equal(layer, s.QueryFirst("layer"))
}

func TestInsertFirstAndRemove(t *testing.T) {
	s := NewSurface("roll-0")
	layer := NewElement("g", "layer")
	s.Append(layer)
	layer.Append(NewRect("note", model.NormalizedRect{}))
	sel := NewRect("sel", model.NormalizedRect{})
	layer.InsertFirst(sel)

	assert := assert.New(t)
	assert.Equal(sel, layer.Children[0])
	assert.Equal(layer, sel.Parent())
	assert.True(s.Remove(sel))
	assert.Len(layer.Children, 1)
	assert.Nil(sel.Parent())
	assert.False(s.Remove(sel))
}

func TestDetachedSurfaceIgnoresMutations(t *testing.T) {
	s := NewSurface("roll-0")
	s.Detach()
	s.Append(NewElement("g", "layer"))
	s.SetViewBox(0, 0, 1, 1)

	assert := assert.New(t)
	assert.True(s.Detached())
	assert.Nil(s.Root())
	assert.Empty(s.QueryClass("layer"))

	var nilSurface *Surface
	nilSurface.Clear()
	nilSurface.Append(NewElement("g", "layer"))
	assert.False(nilSurface.Valid())
	assert.Equal("", nilSurface.String())
}

func TestWriteSVG(t *testing.T) {
	s := NewSurface("roll-3")
	s.SetViewBox(0, 0, 1, 1)
	s.SetSize("80%", "150")
	s.Append(NewRect("note-rectangle", model.NormalizedRect{X: 0.25, Y: 0.5, Width: 0.125, Height: 0.03125}).Set("fill", "#ff0000"))

	out := s.String()

	assert := assert.New(t)
	assert.True(strings.HasPrefix(out, `<svg id="roll-3" class="piano-roll-svg"`))
	assert.Contains(out, `viewBox="0 0 1 1"`)
	assert.Contains(out, `preserveAspectRatio="none"`)
	assert.Contains(out, `<rect class="note-rectangle" x="0.25" y="0.5" width="0.125" height="0.03125" fill="#ff0000"></rect>`)
	assert.True(strings.HasSuffix(out, "</svg>"))
}

func TestClearEmptiesTree(t *testing.T) {
	s := NewSurface("roll-0")
	s.Append(NewElement("g", "layer"))
	s.Clear()

	assert.Empty(t, s.Root().Children)
}
