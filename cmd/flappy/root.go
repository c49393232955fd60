package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-arcade/internal/storage"
)

// options holds the global flags and what PersistentPreRunE builds from them.
type options struct {
	fps        int
	seed       int64
	dbPath     string
	configPath string
	difficulty string
	logFile    string
	logLevel   string

	logger  *log.Logger
	logSink io.Closer
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "flappy",
		Short: "Flappy Bird in your terminal",
		Long: `Flap a bird through an endless line of pipes.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window (needs the ebiten build tag)
  scores   - View or reset the high score
  config   - Print the effective game config

Examples:
  flappy play
  flappy play --difficulty hard
  flappy play --seed 42 --log-file /tmp/flappy.log
  flappy config --interactive
  flappy config --config ./my-flappy.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return opts.setupLogger()
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if opts.logSink != nil {
				return opts.logSink.Close()
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&opts.fps, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&opts.dbPath, "db", "~/.arcade/flappy.db", "Path to the high score database")
	flags.StringVar(&opts.configPath, "config", "", "Path to custom game config YAML")
	flags.StringVar(&opts.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file (default: discarded)")
	flags.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	cmd.AddCommand(
		newPlayCmd(opts),
		newWindowCmd(opts),
		newScoresCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// setupLogger builds the logger. The terminal belongs to the game while it
// runs, so logs only go to a file when one is asked for.
func (o *options) setupLogger() error {
	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", o.logLevel, err)
	}

	var w io.Writer = io.Discard
	if o.logFile != "" {
		path, err := storage.ExpandPath(o.logFile)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		o.logSink = f
	}

	o.logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
		Level:           level,
	})
	return nil
}
