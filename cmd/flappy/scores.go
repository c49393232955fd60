package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

func newScoresCmd(opts *options) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the high score",
		Long: `Display the stored high score, or forget it with --reset.

Examples:
  flappy scores
  flappy scores --reset
  flappy scores --db ./flappy.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := storage.Open(opts.dbPath)
			if err != nil {
				return fmt.Errorf("opening scores database: %w", err)
			}
			defer store.Close()

			scores := storage.NewHighScores(store, opts.logger)
			out := cmd.OutOrStdout()

			if reset {
				if err := scores.Reset(); err != nil {
					return err
				}
				opts.logger.Info("high score reset", "db", store.Path())
				fmt.Fprintln(out, "High score reset.")
				return nil
			}

			high := scores.LoadHighScore()
			fmt.Fprintln(out, "High Score - Flappy Bird")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Best: %d\n", high)
			if high == 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
			}
			fmt.Fprintf(out, "\nDatabase: %s\n", store.Path())
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Forget the stored high score")
	return cmd
}
