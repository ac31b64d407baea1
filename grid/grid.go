// Package grid owns one browsable grid of rolls: the loaded sequence, the
// surfaces the rolls are drawn on, which roll is focused and the selection
// controller bound to it. Nothing here is package level, so every viewer
// gets its own Grid.
package grid

import (
	"context"
	"fmt"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/jsphweid/pianoroll/chunk"
	"github.com/jsphweid/pianoroll/constants"
	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/model"
	"github.com/jsphweid/pianoroll/normalize"
	"github.com/jsphweid/pianoroll/render"
	"github.com/jsphweid/pianoroll/selection"
	"github.com/jsphweid/pianoroll/source"
	"github.com/jsphweid/pianoroll/svg"
)

const NoFocus = -1

type Roll struct {
	ID      int
	Chunk   model.Chunk
	Surface *svg.Surface
	Layout  normalize.Layout
	focused bool
}

func (r *Roll) Title() string {
	return fmt.Sprintf("This is a piano roll number %d", r.ID)
}

func (r *Roll) Focused() bool {
	return r.focused
}

func (r *Roll) Height() int {
	if r.focused {
		return constants.FocusedRollHeight
	}
	return constants.RollHeight
}

func (r *Roll) draw() {
	r.Layout = render.Render(r.Surface, r.Chunk)
	r.Surface.SetSize("80%", fmt.Sprint(r.Height()))
}

type Option func(*Grid)

func WithChunkSize(k int) Option {
	return func(g *Grid) {
		if k > 0 {
			g.chunkSize = k
		}
	}
}

// WithRollCount caps the rolls shown; 0 shows one roll per chunk.
func WithRollCount(n int) Option {
	return func(g *Grid) {
		if n >= 0 {
			g.rollCount = n
		}
	}
}

func WithCountHandler(fn func(roll, count int)) Option {
	return func(g *Grid) {
		g.onCount = fn
	}
}

type Grid struct {
	id        string
	chunkSize int
	rollCount int
	onCount   func(roll, count int)

	seq      model.NoteSequence
	hasData  bool
	rolls    []*Roll
	focused  int
	selector *selection.Controller
}

func New(opts ...Option) *Grid {
	g := &Grid{
		id:        uuid.New().String(),
		chunkSize: constants.ChunkSize,
		rollCount: constants.RollCount,
		focused:   NoFocus,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Grid) ID() string {
	return g.id
}

func (g *Grid) HasData() bool {
	return g.hasData
}

func (g *Grid) Sequence() model.NoteSequence {
	return g.seq
}

func (g *Grid) Rolls() []*Roll {
	return g.rolls
}

func (g *Grid) Roll(id int) (*Roll, bool) {
	if id < 0 || id >= len(g.rolls) {
		return nil, false
	}
	return g.rolls[id], true
}

func (g *Grid) Focused() int {
	return g.focused
}

// Controller is the selection controller of the focused roll, nil when no
// roll is focused.
func (g *Grid) Controller() *selection.Controller {
	return g.selector
}

// Load fetches a sequence from src and renders it. When the data can't be
// had the grid is left without data and nothing is drawn.
func (g *Grid) Load(ctx context.Context, src source.Source) error {
	seq, err := src.Load(ctx)
	if err != nil {
		log.WithError(err).WithField("grid", g.id).Error("Error loading data")
		g.clear()
		return err
	}
	g.SetData(seq)
	return nil
}

func (g *Grid) clear() {
	g.unfocus()
	for _, r := range g.rolls {
		r.Surface.Detach()
	}
	g.seq = nil
	g.rolls = nil
	g.hasData = false
}

// SetData replaces the grid's contents, drops any focus and renders every
// roll.
func (g *Grid) SetData(seq model.NoteSequence) {
	g.clear()
	g.seq = seq
	g.hasData = true

	n := g.rollCount
	if n == 0 {
		n = chunk.Count(len(seq), g.chunkSize)
	}

	g.rolls = make([]*Roll, 0, n)
	for i := 0; i < n; i++ {
		r := &Roll{
			ID:      i,
			Chunk:   chunk.At(seq, g.chunkSize, i),
			Surface: svg.NewSurface(fmt.Sprintf("roll-%d-%s", i, g.id[:8])),
		}
		r.draw()
		g.rolls = append(g.rolls, r)
	}

	log.WithFields(log.Fields{
		"grid":  g.id,
		"notes": len(seq),
		"rolls": len(g.rolls),
	}).Info("rendered grid")
}

func (g *Grid) unfocus() {
	if g.selector != nil {
		g.selector.Detach()
		g.selector = nil
	}
	if r, ok := g.Roll(g.focused); ok {
		r.focused = false
		r.draw()
	}
	g.focused = NoFocus
}

// Focus promotes roll id to the focused view. Focusing the roll that is
// already focused changes nothing and reports false.
func (g *Grid) Focus(id int) (bool, error) {
	if id == g.focused {
		return false, nil
	}
	r, ok := g.Roll(id)
	if !ok {
		return false, fault.Wrap(fault.New(fmt.Sprintf("no roll %d", id)),
			ftag.With(errs.InvalidArgument),
			fmsg.WithDesc("unknown roll", fmt.Sprintf("There is no piano roll number %d", id)))
	}

	g.unfocus()
	r.focused = true
	r.draw()
	g.focused = id

	roll := r.ID
	g.selector = selection.New(r.Surface, r.Layout.RowHeight,
		selection.WithCountHandler(func(count int) {
			if g.onCount != nil {
				g.onCount(roll, count)
			}
		}))

	log.WithFields(log.Fields{"grid": g.id, "roll": id}).Debug("focused roll")
	return true, nil
}

// PointerDown starts a drag on roll id. Only the focused roll is
// interactive; anything else is ignored and reports false.
func (g *Grid) PointerDown(id int, ev model.PointerEvent) bool {
	if g.selector == nil || id != g.focused {
		return false
	}
	g.selector.PointerDown(ev)
	return g.selector.State() == selection.Dragging
}

func (g *Grid) PointerMove(ev model.PointerEvent) {
	if g.selector != nil {
		g.selector.PointerMove(ev)
	}
}

// PointerUp ends a drag wherever the pointer was released.
func (g *Grid) PointerUp(ev model.PointerEvent) (int, bool) {
	if g.selector == nil {
		return 0, false
	}
	return g.selector.PointerUp(ev)
}

func (g *Grid) Summaries() model.RollsResponse {
	res := model.RollsResponse{Focused: g.focused, Rolls: make([]model.RollSummary, 0, len(g.rolls))}
	for _, r := range g.rolls {
		res.Rolls = append(res.Rolls, model.RollSummary{
			ID:      r.ID,
			Title:   r.Title(),
			Notes:   r.Chunk.Len(),
			Focused: r.focused,
			Height:  r.Height(),
		})
	}
	return res
}
