// flappy is a flappy-bird game for the terminal, the desktop and SSH.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy play --window     - Play in a desktop window
//	flappy serve             - Start SSH server for remote play
//	flappy scores            - Show the run journal
//	flappy config            - Print the default settings
//
// Global flags:
//
//	--config <path>    - Settings file (default search: ~/.flappy, ./configs, embedded)
//	--seed <value>     - RNG seed for reproducible gap placement
//	--db <path>        - Run journal database (disabled when empty)
//	--log-file <path>  - Write logs to a file
//	--sound            - Play sound cues
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
	flagSound    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - flap a bird through pipes in your terminal",
	Long: `Flappy is a side-scrolling reflex game. Flap to keep the bird in the
air and steer it through the gaps; pipes speed up as your score grows.

Available commands:
  play     - Play locally (terminal or --window)
  serve    - Start SSH server for remote play
  scores   - View the run journal
  config   - Print the default settings

Examples:
  flappy play
  flappy play --window --sound
  flappy play --seed 42 --db ~/.flappy/runs.db
  flappy serve --ssh :2222
  flappy scores --db ~/.flappy/runs.db`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a settings YAML file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Override the tick rate from settings")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to the run journal database (empty = disabled)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound cues")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
