package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fat-runner/internal/audio"
	"github.com/vovakirdan/fat-runner/internal/config"
	"github.com/vovakirdan/fat-runner/internal/core"
	"github.com/vovakirdan/fat-runner/internal/games/fatrunner"
	"github.com/vovakirdan/fat-runner/internal/platform/tui"
	"github.com/vovakirdan/fat-runner/internal/registry"
	"github.com/vovakirdan/fat-runner/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLog        string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to fatrunner.

Controls:
  A/D, Left/Right, H/L  - Change lane
  Mouse click           - Move toward the clicked side
  Enter/Space           - Start, resume
  Esc/B                 - Pause (leave when paused or over)
  P                     - Pause/unpause
  R                     - Restart (when paused or over)
  X                     - Leave the game
  Q/Ctrl+C              - Quit
  Ctrl+S                - Save a screenshot

Difficulty options:
  easy   - Gentle ramp to 2x, slower hunger
  normal - Ramp from 1x to 3x
  hard   - Start at 1.6x, faster hunger
  fixed  - No ramp, stays at the config's initial level

Examples:
  fatrunner play
  fatrunner play --difficulty hard
  fatrunner play --sound --volume 0.4
  fatrunner play --config ./my-fatrunner.yaml --log run.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
		c.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
		c.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume (0-1)")
		c.Flags().StringVar(&flagLog, "log", "", "Write a session log to this file")
	}
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// configureGame validates the game flags and hands them to the game
// package. An explicit --config that fails to load is fatal.
func configureGame() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		if _, err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	fatrunner.SetConfigPath(flagConfig)
	fatrunner.SetDifficultyPreset(flagDifficulty)
	return nil
}

// openStore opens the session score table. Scores are best effort.
func openStore() *storage.Store {
	store, err := storage.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score table: %v\n", err)
		return nil
	}
	return store
}

// sessionLogger returns a logger writing to path, or a discarding one when
// path is empty. The returned func closes the file.
func sessionLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "fatrunner",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}

// soundPlayer starts the speaker when sound is enabled. A missing audio
// device only warns. The returned func releases the mixer.
func soundPlayer() (tui.SoundPlayer, func()) {
	if !flagSound {
		return nil, func() {}
	}
	sm := audio.NewSoundManager(flagVolume)
	if err := sm.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		return nil, func() {}
	}
	return sm, sm.Cleanup
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fatrunner list' to see available games.")
		os.Exit(1)
	}
	if err := configureGame(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := sessionLogger(flagLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sound, stopSound := soundPlayer()
	defer stopSound()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	_, err = tui.Run(game, store, terminalConfig(), tui.Options{
		Difficulty: flagDifficulty,
		Logger:     logger,
		Sound:      sound,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
