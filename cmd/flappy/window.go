package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/platform/window"
)

func newWindowCmd(opts *options) *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "window",
		Short: "Play in a desktop window",
		Long: `Start a game in a desktop window.

Only available in binaries built with the ebiten tag:
  go build -tags ebiten ./cmd/flappy

Controls:
  Space/Up/Click  - Flap (starts and restarts too)
  P               - Pause
  Q/Esc           - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, closer, err := opts.newGame(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			return window.Run(game, window.Options{
				TPS:    opts.fps,
				Scale:  scale,
				Logger: opts.logger,
			})
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1, "Initial window size relative to the 600x500 playfield")
	return cmd
}
