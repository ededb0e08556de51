package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "starcatcher",
	})

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("exit", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	opts := gameOptions{logger: logger}
	var seed int64

	cmd := &cobra.Command{
		Use:           "starcatcher",
		Short:         "Collect the stars, dodge the bombs",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			opts.seed = uint64(seed)
			if opts.debug {
				logger.SetLevel(log.DebugLevel)
			}

			game, err := NewGame(opts)
			if err != nil {
				return err
			}
			defer game.Close()

			ebiten.SetWindowSize(game.Layout(0, 0))
			ebiten.SetWindowTitle("starcatcher")
			ebiten.SetTPS(ebiten.DefaultTPS)

			return ebiten.RunGame(game)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for star bounce and bomb spawns")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "draw physics shapes and log gameplay events")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "redraw sprites when prefabs/sprites.yaml changes")
	return cmd
}
