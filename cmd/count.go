package cmd

import (
	"fmt"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/grid"
	"github.com/jsphweid/pianoroll/model"
)

func init() {
	rootCmd.AddCommand(countCmd)
}

var countCmd = &cobra.Command{
	Use:   "count ROLL FROM TO",
	Short: "Counts notes in a selection",
	Long:  `Drags a selection over roll ROLL from FROM to TO (both 0..1 across the roll) and prints how many notes start inside it.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.With("roll must be a number"))
		}
		from, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.With("FROM must be a number"))
		}
		to, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.With("TO must be a number"))
		}

		g, err := loadGrid(cmd.Context())
		if err != nil {
			return err
		}
		n, err := countSelection(g, id, from, to)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v notes selected\n", n)
		return nil
	},
}

// a wide, short box so the drag goes through the same per-axis scaling a
// stretched roll on screen does
var countBox = model.BoundingBox{Width: 1000, Height: 100}

func countSelection(g *grid.Grid, id int, from, to float64) (int, error) {
	if _, err := g.Focus(id); err != nil {
		return 0, err
	}
	at := func(x float64) model.PointerEvent {
		return model.PointerEvent{
			X:   countBox.Left + x*countBox.Width,
			Y:   countBox.Top + countBox.Height/2,
			Box: countBox,
		}
	}
	g.PointerDown(id, at(from))
	g.PointerMove(at(to))
	n, ok := g.PointerUp(at(to))
	if !ok {
		return 0, fault.Wrap(fault.New("selection did not complete"), fmsg.With("could not select on roll"))
	}
	return n, nil
}
