package cmd

import (
	"context"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jsphweid/pianoroll/config"
	"github.com/jsphweid/pianoroll/grid"
	"github.com/jsphweid/pianoroll/source"
)

var (
	cfgPath string
	verbose bool
	cfg     = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "pianoroll",
	Short: "Piano roll grid",
	Long:  `Renders note sequences as a grid of piano rolls and counts notes in a dragged selection.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
		setupLogging(cfg.LogLevel, verbose)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "pianoroll.yaml", "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func setupLogging(level string, verbose bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, using info")
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}
	log.SetLevel(lvl)
}

func newGrid(opts ...grid.Option) *grid.Grid {
	opts = append([]grid.Option{
		grid.WithChunkSize(cfg.Grid.ChunkSize),
		grid.WithRollCount(cfg.Grid.RollCount),
	}, opts...)
	return grid.New(opts...)
}

// loadGrid builds a grid from the configured source for the one-shot
// commands.
func loadGrid(ctx context.Context) (*grid.Grid, error) {
	src, err := source.New(cfg.Source)
	if err != nil {
		return nil, err
	}
	g := newGrid()
	if err := g.Load(ctx, src); err != nil {
		return nil, err
	}
	return g, nil
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
