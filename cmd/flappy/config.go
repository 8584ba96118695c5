package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagResolved bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the settings",
	Long: `Print the embedded default settings as YAML, ready to copy into
~/.flappy/config.yaml or ./configs/flappy.yaml and edit.

With --resolved, print the settings the game would actually use after the
config search and --fps, preceded by where they came from.

Examples:
  flappy config > ~/.flappy/config.yaml
  flappy config --resolved --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runConfig(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.Flags().BoolVar(&flagResolved, "resolved", false, "Print the effective settings instead of the defaults")
}

func runConfig(w io.Writer) error {
	if !flagResolved {
		_, err := w.Write(config.DefaultYAML())
		return err
	}

	settings, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		settings.Screen.FPS = flagFPS
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(w, "# source: %s\n", source)
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return fmt.Errorf("cannot encode settings: %w", err)
	}
	return enc.Close()
}
