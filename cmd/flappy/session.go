package main

import (
	"fmt"
	"io"
	"time"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// loadConfig reads the game config and applies the difficulty preset.
// It also returns where the config came from.
func (o *options) loadConfig() (config.FlappyConfig, string, error) {
	preset, ok := config.ParsePreset(o.difficulty)
	if !ok {
		return config.FlappyConfig{}, "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", o.difficulty)
	}

	cfg, source, err := config.LoadFlappyWithSource(o.configPath)
	if err != nil {
		return config.FlappyConfig{}, "", err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, source, nil
}

// openHighScores opens the database-backed high score store. When the
// database is unusable the game keeps its record in memory for this run and
// the returned closer is a no-op.
func (o *options) openHighScores(warn io.Writer) (flappy.HighScoreStore, io.Closer) {
	store, err := storage.Open(o.dbPath)
	if err != nil {
		o.logger.Warn("could not open scores database", "path", o.dbPath, "error", err)
		fmt.Fprintf(warn, "Warning: high score will not be saved: %v\n", err)
		return flappy.NewMemoryHighScores(0), io.NopCloser(nil)
	}
	return storage.NewHighScores(store, o.logger), store
}

// newGame assembles a game from flags.
func (o *options) newGame(warn io.Writer) (*flappy.Game, io.Closer, error) {
	cfg, source, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	seed := o.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scores, closer := o.openHighScores(warn)
	game := flappy.New(cfg, seed, scores)
	o.logger.Debug("game ready",
		"config", source,
		"seed", seed,
		"difficulty", cfg.Difficulty.Enabled,
		"high", game.HighScore(),
	)
	return game, closer, nil
}
