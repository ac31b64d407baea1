package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pianoroll/util"
)

var outDir string

func init() {
	renderCmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Writes every roll as an SVG file",
	Long:  `Loads the configured data once and writes roll-NN.svg for every roll in the grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if outDir != "" {
			cfg.OutDir = outDir
		}
		return renderAll(cmd, cfg.OutDir)
	},
}

func renderAll(cmd *cobra.Command, dir string) error {
	g, err := loadGrid(cmd.Context())
	if err != nil {
		return err
	}
	if err := util.RecreateOutputDir(dir); err != nil {
		return err
	}

	for _, r := range g.Rolls() {
		path, err := util.WriteFile(dir, fmt.Sprintf("roll-%02d.svg", r.ID), []byte(r.Surface.String()))
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{"roll": r.ID, "notes": r.Chunk.Len()}).Debug("wrote " + path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v rolls to %v\n", len(g.Rolls()), dir)
	return nil
}
