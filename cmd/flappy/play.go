package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

func newPlayCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Start a game in the terminal.

Controls:
  Space/Up/Click  - Flap (starts and restarts too)
  P               - Pause
  Ctrl+S          - Save a text screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  flappy play
  flappy play --difficulty easy
  flappy play --config ./my-flappy.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			game, closer, err := opts.newGame(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			width, height := 80, 24 // Defaults
			if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
				width = w
				height = h
			}

			return tui.Run(game, core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: opts.fps,
			}, opts.logger)
		},
	}
}
