package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pianoroll/errs"
	"github.com/jsphweid/pianoroll/grid"
	"github.com/jsphweid/pianoroll/render"
	"github.com/jsphweid/pianoroll/util"
)

var inspectCols int

func init() {
	inspectCmd.Flags().IntVar(&inspectCols, "cols", 64, "columns the roll is drawn across")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect ROLL",
	Short: "Inspects a roll",
	Long:  `Prints one roll of the grid as text, one line per pitch row.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fault.Wrap(err, ftag.With(errs.InvalidArgument), fmsg.With("roll must be a number"))
		}
		g, err := loadGrid(cmd.Context())
		if err != nil {
			return err
		}
		out, err := inspect(g, id, inspectCols)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

var noteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func noteName(pitch int) string {
	return fmt.Sprintf("%s%d", noteNames[pitch%12], pitch/12-1)
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff00"))
	whiteRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	blackRowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
)

func inspect(g *grid.Grid, id, cols int) (string, error) {
	r, ok := g.Roll(id)
	if !ok {
		return "", fault.Wrap(fault.New(fmt.Sprintf("no roll %d", id)), ftag.With(errs.NotFound), fmsg.With("unknown roll"))
	}
	cols = util.Max(cols, 1)
	l := r.Layout

	rows := make([][]bool, l.Rows())
	for i := range rows {
		rows[i] = make([]bool, cols)
	}
	for _, rect := range l.Rects {
		row := l.PitchMax - rect.Pitch
		first := util.Clamp(int(rect.X*float64(cols)), 0, cols-1)
		last := util.Clamp(int(rect.Right()*float64(cols)), first, cols-1)
		for c := first; c <= last; c++ {
			rows[row][c] = true
		}
	}

	var out strings.Builder
	out.WriteString(titleStyle.Render(fmt.Sprintf("%s (%d notes)", r.Title(), r.Chunk.Len())))
	out.WriteString("\n")
	for i, cells := range rows {
		pitch := l.PitchMax - i
		style := whiteRowStyle
		if render.IsBlackKey(pitch) {
			style = blackRowStyle
		}
		out.WriteString(fmt.Sprintf("%4s ", noteName(pitch)))
		for _, on := range cells {
			if on {
				out.WriteString(noteStyle.Render("█"))
			} else {
				out.WriteString(style.Render("·"))
			}
		}
		out.WriteString("\n")
	}
	return out.String(), nil
}
