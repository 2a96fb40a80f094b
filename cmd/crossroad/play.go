package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossroad/internal/audio"
	"github.com/vovakirdan/tui-crossroad/internal/config"
	"github.com/vovakirdan/tui-crossroad/internal/core"
	"github.com/vovakirdan/tui-crossroad/internal/games/crossroad"
	"github.com/vovakirdan/tui-crossroad/internal/platform/tui"
	"github.com/vovakirdan/tui-crossroad/internal/registry"
	"github.com/vovakirdan/tui-crossroad/internal/storage"
)

var (
	flagVariant    string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagVolume     float64
	flagLogFile    string
)

func init() {
	rootCmd.Flags().StringVar(&flagVariant, "variant", registry.DefaultID, "Board variant (see 'crossroad list')")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config (YAML or TOML)")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&flagSound, "sound", true, "Play sound cues")
	rootCmd.Flags().Float64Var(&flagVolume, "volume", 0.4, "Sound volume from 0 to 1")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !registry.Exists(flagVariant) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", flagVariant)
		fmt.Fprintln(os.Stderr, "Run 'crossroad list' to see available variants.")
		os.Exit(1)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q\n", flagDifficulty)
		os.Exit(1)
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Surface config errors before the screen switches over
	if _, _, err := config.LoadCrossroad(flagConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	crossroad.SetConfigPath(flagConfig)
	crossroad.SetLogger(logger)
	crossroad.SetDifficultyPreset(flagDifficulty)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(flagVariant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		closeLog()
		os.Exit(1)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without history - game still works
		store = nil
	}

	var sound *audio.Player
	if flagSound {
		sound = audio.NewPlayer(flagVolume)
		if err := sound.Init(); err != nil {
			logger.Warn("sound disabled", "error", err)
		}
	}

	runErr := tui.Run(game, tui.Options{Store: store, Audio: sound, Logger: logger}, cfg)

	if sound != nil {
		sound.Close()
	}

	if runErr == nil {
		summary, sumErr := tui.Summary(store, game.ID())
		if sumErr != nil {
			logger.Warn("could not build summary", "error", sumErr)
		} else if summary != "" {
			fmt.Println(summary)
		}
	}

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}

// openLogger returns a logger writing to path, or a discarding one when
// path is empty. The terminal belongs to the game, so nothing logs to it.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "crossroad",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
