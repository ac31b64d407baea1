package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsphweid/pianoroll/chord"
	"github.com/jsphweid/pianoroll/grid"
	"github.com/jsphweid/pianoroll/util"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Prints how the loaded sequence splits into rolls.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := loadGrid(cmd.Context())
		if err != nil {
			return err
		}
		report(cmd.OutOrStdout(), g)
		return nil
	},
}

type rollReport struct {
	id       int
	notes    int
	pitchMin int
	pitchMax int
	start    float64
	span     float64
	chords   int
	poly     int
}

func analyzeRolls(g *grid.Grid) []rollReport {
	var res []rollReport
	for _, r := range g.Rolls() {
		chords := chord.Chords(r.Chunk)
		res = append(res, rollReport{
			id:       r.ID,
			notes:    r.Chunk.Len(),
			pitchMin: r.Layout.PitchMin,
			pitchMax: r.Layout.PitchMax,
			start:    r.Layout.MinOnset,
			span:     r.Layout.TimeSpan,
			chords:   len(chords),
			poly:     chord.Polyphony(chords),
		})
	}
	return res
}

func report(w io.Writer, g *grid.Grid) {
	rolls := analyzeRolls(g)
	counts := make([]int, 0, len(rolls))
	for _, r := range rolls {
		counts = append(counts, r.notes)
	}

	fmt.Fprintf(w, "notes in sequence: %v\n", len(g.Sequence()))
	fmt.Fprintf(w, "rolls: %v\n", len(rolls))
	fmt.Fprintf(w, "notes in rolls: %v\n", util.Sum(counts))
	for _, r := range rolls {
		if r.notes == 0 {
			fmt.Fprintf(w, "roll %2d: empty\n", r.id)
			continue
		}
		fmt.Fprintf(w, "roll %2d: %2d notes, pitch rows %v-%v, %.2fs from %.2fs, %v chords, polyphony %v\n",
			r.id, r.notes, r.pitchMin, r.pitchMax, r.span, r.start, r.chords, r.poly)
	}
}
