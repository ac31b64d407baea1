// Package selection tracks a pointer drag over a focused roll and counts
// the notes whose onset falls inside the dragged span.
//
// The Selection struct held by a Controller is the source of truth; the
// rectangle drawn on the surface is only a projection of it.
package selection

import (
	log "github.com/sirupsen/logrus"

	"github.com/jsphweid/pianoroll/model"
	"github.com/jsphweid/pianoroll/render"
	"github.com/jsphweid/pianoroll/svg"
)

type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

type Option func(*Controller)

// WithCountHandler is called synchronously with the count of every
// completed drag.
func WithCountHandler(fn func(count int)) Option {
	return func(c *Controller) {
		c.onCount = fn
	}
}

// Controller is bound to a single surface. It is not safe for concurrent
// use; events must be delivered in order by one goroutine.
type Controller struct {
	surface   *svg.Surface
	rowHeight float64
	onCount   func(int)

	state State
	sel   *model.Selection
	rect  *svg.Element
}

func New(surface *svg.Surface, rowHeight float64, opts ...Option) *Controller {
	c := &Controller{
		surface:   surface,
		rowHeight: rowHeight,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Surface() *svg.Surface {
	return c.surface
}

func (c *Controller) Selection() (model.Selection, bool) {
	if c.sel == nil {
		return model.Selection{}, false
	}
	return *c.sel, true
}

// Detach unbinds the controller. Every later event is ignored.
func (c *Controller) Detach() {
	c.surface = nil
	c.state = Idle
	c.sel = nil
	c.rect = nil
}

func (c *Controller) Attached() bool {
	return c.surface.Valid()
}

func (c *Controller) normalize(ev model.PointerEvent) (float64, float64, bool) {
	// rolls are drawn in the unit square
	return ToNormalized(ev.X, ev.Y, ev.Box, 1, 1)
}

// PointerDown starts a new drag, dropping the previous rectangle.
func (c *Controller) PointerDown(ev model.PointerEvent) {
	if !c.Attached() {
		return
	}
	x, y, ok := c.normalize(ev)
	if !ok {
		log.WithField("box", ev.Box).Debug("ignoring pointer down on surface without area")
		return
	}

	c.removeRect()
	c.sel = &model.Selection{
		StartX:   x,
		CurrentX: x,
		CurrentY: y,
		Y:        0,
		Height:   c.rowHeight,
	}
	c.rect = svg.NewRect(render.SelectionClass, c.projection()).
		Set("fill", render.SelectionFill).
		Set("fill-opacity", "0.6")

	// behind the notes
	if layer := c.surface.QueryFirst(render.LayerClass); layer != nil {
		layer.InsertFirst(c.rect)
	} else {
		c.surface.InsertFirst(c.rect)
	}
	c.state = Dragging
}

func (c *Controller) PointerMove(ev model.PointerEvent) {
	if c.state != Dragging || !c.Attached() || c.sel == nil {
		return
	}
	x, y, ok := c.normalize(ev)
	if !ok {
		return
	}
	c.sel.CurrentX, c.sel.CurrentY = x, y
	*c.rect.Rect = c.projection()
}

// PointerUp ends the drag and returns the number of notes whose x lies
// inside the selection. ok is false when no drag was in progress, in which
// case the count is 0. The rectangle stays drawn after a completed drag.
func (c *Controller) PointerUp(ev model.PointerEvent) (count int, ok bool) {
	if c.state != Dragging {
		return 0, false
	}
	c.state = Idle
	if !c.Attached() || c.sel == nil {
		return 0, false
	}

	var rects []model.NormalizedRect
	for _, note := range c.surface.QueryClass(render.NoteClass) {
		if note.Rect != nil {
			rects = append(rects, *note.Rect)
		}
	}
	x1, x2 := c.sel.X(), c.sel.X2()
	count = CountInRange(rects, x1, x2)

	log.WithFields(log.Fields{
		"surface": c.surface.ID(),
		"x1":      x1,
		"x2":      x2,
		"count":   count,
	}).Debug("selection finished")

	if c.onCount != nil {
		c.onCount(count)
	}
	return count, true
}

func (c *Controller) projection() model.NormalizedRect {
	return model.NormalizedRect{
		X:      c.sel.X(),
		Y:      c.sel.Y,
		Width:  c.sel.Width(),
		Height: c.sel.Height,
		Index:  -1,
	}
}

func (c *Controller) removeRect() {
	if c.rect != nil {
		c.surface.Remove(c.rect)
	}
	// a rectangle left over from an earlier controller on this surface
	for _, r := range c.surface.QueryClass(render.SelectionClass) {
		c.surface.Remove(r)
	}
	c.rect = nil
}
