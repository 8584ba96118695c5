package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagWindow bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start the game on the start screen.

Controls:
  Space        - Start / Flap
  P            - Pause and resume
  R            - Restart (after game over)
  Esc          - Quit (after game over)
  Q/Ctrl+C     - Quit

The high score lasts as long as the process. With --db every finished run
is also recorded in the journal shown by 'flappy scores'.

Examples:
  flappy play
  flappy play --window
  flappy play --seed 7 --log-file flappy.log --log-level debug
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runPlay(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
}

func runPlay() error {
	// The terminal frontend owns the screen, so logs only go to --log-file
	fallback := io.Writer(io.Discard)
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger(fallback, "flappy")
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := loadSettings(logger)
	if err != nil {
		return err
	}

	seed := resolveSeed()
	logger.Debug("seeded", "seed", seed)
	session := flappy.NewSession(settings, core.SystemClock{}, rand.New(rand.NewSource(seed)))

	hooks := &platform.Hooks{Logger: logger, Player: playerName()}

	if flagDBPath != "" {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			// Continue without the journal - the game still works
			fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		} else {
			defer store.Close()
			hooks.Store = store
		}
	}

	if flagSound {
		player, err := audio.NewPlayer(audio.DefaultVolume)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		} else {
			defer player.Close()
			hooks.Cues = player
		}
	}

	if flagWindow {
		return window.Run(session, hooks)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.Screen.FPS,
		Seed:     seed,
		Player:   hooks.Player,
	}
	return tui.Run(session, hooks, cfg)
}
