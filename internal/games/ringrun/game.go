// Package ringrun implements a side-scrolling ring collector.
// The player jumps over a rolling landscape to grab rings that stream in
// from the right. The simulation lives in World; Game adapts it to the
// terminal platform.
package ringrun

import (
	"fmt"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
)

// Game adapts a World to the platform's tick/render cycle. The frame driver
// draws into an off-screen canvas during Step; Render copies it out.
type Game struct {
	cfg     config.RunnerConfig
	sound   SoundEmitter
	runtime core.RuntimeConfig
	world   *World
	canvas  *core.Screen
	surface *ScreenSurface
}

// New creates a game with the given configuration and sound capability.
func New(cfg config.RunnerConfig, sound SoundEmitter) *Game {
	return &Game{
		cfg:   cfg,
		sound: orSilent(sound),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "ringrun"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ring Runner"
}

// Reset starts a new run sized to the runtime screen.
func (g *Game) Reset(runtime core.RuntimeConfig) error {
	if runtime.ScreenW <= 0 || runtime.ScreenH <= 0 {
		return fmt.Errorf("%w: screen %dx%d", config.ErrInvalid, runtime.ScreenW, runtime.ScreenH)
	}

	width := float64(runtime.ScreenW) * g.cfg.Surface.CellWidth
	height := float64(runtime.ScreenH) * g.cfg.Surface.CellHeight

	world, err := NewWorld(g.cfg, width, height, runtime.Seed, g.sound)
	if err != nil {
		return err
	}

	g.runtime = runtime
	g.world = world
	g.canvas = core.NewScreen(runtime.ScreenW, runtime.ScreenH)
	g.surface = NewScreenSurface(g.canvas, g.cfg.Surface.CellWidth, g.cfg.Surface.CellHeight)
	g.world.Draw(g.surface)
	return nil
}

// Step applies input and advances the world by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{}
	}

	if in.Has(core.ActionPause) {
		if g.world.Running() {
			g.world.Stop()
		} else {
			g.world.Start()
		}
	}

	if in.Has(core.ActionJump) {
		g.world.RequestJump()
	}

	res := g.world.Tick(g.surface)
	return core.StepResult{
		State:     g.State(),
		Collected: res.Collected,
		Jumped:    res.Jumped,
	}
}

// Render copies the last frame to dst and overlays the pause box.
func (g *Game) Render(dst *core.Screen) {
	if g.world == nil {
		dst.Clear()
		return
	}
	dst.CopyFrom(g.canvas)

	if !g.world.Running() {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// State returns the current run state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{}
	}
	score := g.world.Score()
	return core.GameState{
		Score:  score.Points(),
		Rings:  score.Rings(),
		Ticks:  g.world.Ticks(),
		Paused: !g.world.Running(),
	}
}

// World returns the running world, nil before Reset.
func (g *Game) World() *World {
	return g.world
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
