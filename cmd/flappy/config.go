package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/flappy-arcade/internal/platform/tui"
)

func newConfigCmd(opts *options) *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective game config",
		Long: `Print the game config after the search path, --config and
--difficulty have been applied. The output is valid input for --config.

Search order:
  --config <path>
  ~/.arcade/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config > ~/.arcade/configs/flappy.yaml
  flappy config --difficulty hard
  flappy config --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, source, err := opts.loadConfig()
			if err != nil {
				return err
			}

			if interactive {
				settings, err := cfg.Settings()
				if err != nil {
					return err
				}
				width, height := 80, 24
				if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
					width, height = w, h
				}
				return tui.RunSettings(source, settings, width, height)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# source: %s\n", source)
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Browse the settings in a table")
	return cmd
}
