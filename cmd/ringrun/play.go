package main

import (
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/ring-runner/internal/audio"
	"github.com/vovakirdan/ring-runner/internal/core"
	"github.com/vovakirdan/ring-runner/internal/games/ringrun"
	"github.com/vovakirdan/ring-runner/internal/platform/tui"
	"github.com/vovakirdan/ring-runner/internal/storage"
)

var (
	flagMute   bool
	flagPlayer string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a run in this terminal. The playfield is sized to the terminal
when the run starts and keeps that size.

Controls:
  Space/Up/W  - Jump
  P           - Pause / resume
  R           - Finish the run and start a new one
  Tab         - Session leaderboard (Esc to return)
  Q/Ctrl+C    - Quit

Runs are kept in memory for this session only and summarised on exit.

Examples:
  ringrun play
  ringrun play --mute
  ringrun play --seed 42
  ringrun play --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name on the leaderboard (default: login name)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("ringrun")
	if err != nil {
		return err
	}

	runnerCfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagMute {
		runnerCfg.Sound.Enabled = false
	}

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

	sound, closeSound := audio.Open(runnerCfg.Sound, logger)
	defer closeSound()

	board, err := storage.Open()
	if err != nil {
		logger.Warn("leaderboard unavailable", "error", err)
		// Continue without a leaderboard - the game still works
		board = nil
	} else {
		defer board.Close()
	}

	runs, err := tui.Run(ringrun.New(runnerCfg, sound), board, cfg, playerName(), logger)
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	printSummary(runs)
	return nil
}

// playerName picks the leaderboard name for a local session.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// printSummary prints the session's runs after the terminal is restored.
func printSummary(runs []storage.Run) {
	if len(runs) == 0 {
		return
	}

	best := runs[0]
	rings := 0
	for _, r := range runs {
		rings += r.Rings
		if r.Score > best.Score {
			best = r
		}
	}

	fmt.Printf("%s finished, %s rings collected.\n",
		plural(len(runs), "run"), humanize.Comma(int64(rings)))
	fmt.Printf("Best: %s points (%s rings) in %s.\n",
		humanize.Comma(int64(best.Score)),
		humanize.Comma(int64(best.Rings)),
		best.Duration().Round(100*time.Millisecond),
	)
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return humanize.Comma(int64(n)) + " " + word + "s"
}
