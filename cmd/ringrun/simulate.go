package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
	"github.com/vovakirdan/ring-runner/internal/games/ringrun"
)

var (
	flagTicks  int
	flagWidth  int
	flagHeight int
	flagPolicy string
	flagFrame  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless and report",
	Long: `Run the game without a terminal for a fixed number of ticks, with a
scripted player, and report the result. Useful for tuning a config.

Policies:
  ring    - Jump when the next ring is about to pass overhead (default)
  always  - Jump whenever grounded
  never   - Never jump

Examples:
  ringrun simulate
  ringrun simulate --ticks 36000 --seed 7
  ringrun simulate --policy never --frame
  ringrun simulate --config ./my-runner.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagWidth, "width", 80, "Surface width in columns")
	simulateCmd.Flags().IntVar(&flagHeight, "height", 24, "Surface height in rows")
	simulateCmd.Flags().StringVar(&flagPolicy, "policy", "ring", "Jump policy: ring, always, never")
	simulateCmd.Flags().BoolVar(&flagFrame, "frame", false, "Print the final frame")
}

// jumpPolicy decides whether the scripted player presses jump this tick.
type jumpPolicy func(w *ringrun.World) bool

func policyByName(name string, cfg config.RunnerConfig) (jumpPolicy, error) {
	switch name {
	case "never":
		return func(*ringrun.World) bool { return false }, nil
	case "always":
		return func(w *ringrun.World) bool { return w.Actor().Grounded() }, nil
	case "ring":
		// Rings that reach the actor while it rises are caught on the way up.
		riseTicks := -cfg.Actor.JumpImpulse / cfg.Actor.Gravity
		return func(w *ringrun.World) bool {
			a := w.Actor()
			if !a.Grounded() {
				return false
			}
			lead := w.Landscape().ScrollSpeed() * riseTicks / 2
			for _, r := range w.RingStream().Rings() {
				dx := r.X - a.Center().X
				if dx < 0 {
					continue
				}
				return dx <= lead
			}
			return false
		}, nil
	default:
		return nil, fmt.Errorf("unknown policy %q", name)
	}
}

// cueCounter counts emitted sound cues.
type cueCounter struct {
	jumps    int
	collects int
}

func (c *cueCounter) Emit(kind ringrun.SoundKind) {
	switch kind {
	case ringrun.SoundJump:
		c.jumps++
	case ringrun.SoundCollect:
		c.collects++
	}
}

func runSimulate(_ *cobra.Command, _ []string) error {
	logger, err := newLogger("ringrun-sim")
	if err != nil {
		return err
	}

	runnerCfg, err := loadConfig()
	if err != nil {
		return err
	}
	policy, err := policyByName(flagPolicy, runnerCfg)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := core.RuntimeConfig{
		ScreenW:  flagWidth,
		ScreenH:  flagHeight,
		TickRate: flagFPS,
		Seed:     seed,
	}

	cues := &cueCounter{}
	game := ringrun.New(runnerCfg, cues)
	if err := game.Reset(cfg); err != nil {
		return fmt.Errorf("start simulation: %w", err)
	}

	logger.Debug("simulating", "ticks", flagTicks, "seed", seed, "policy", flagPolicy)

	start := time.Now()
	input := core.NewInputFrame()
	for i := 0; i < flagTicks; i++ {
		input.Clear()
		if policy(game.World()) {
			input.Set(core.ActionJump)
		}
		game.Step(input)
	}
	elapsed := time.Since(start)

	state := game.State()
	played := time.Duration(state.Ticks) * time.Second / time.Duration(max(flagFPS, 1))
	logger.Info("simulation finished",
		"ticks", humanize.Comma(int64(state.Ticks)),
		"played", played,
		"score", humanize.Comma(int64(state.Score)),
		"rings", state.Rings,
		"jumps", cues.jumps,
		"elapsed", elapsed.Round(time.Millisecond),
	)
	if cues.collects != state.Rings {
		logger.Warn("collect cues do not match rings", "cues", cues.collects, "rings", state.Rings)
	}

	if flagFrame {
		screen := core.NewScreen(flagWidth, flagHeight)
		game.Render(screen)
		fmt.Println(screen.String())
	}
	return nil
}
