package ringrun

import (
	"strings"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
)

// soundLog records every emitted cue.
type soundLog struct {
	kinds []SoundKind
}

func (l *soundLog) Emit(kind SoundKind) {
	l.kinds = append(l.kinds, kind)
}

func (l *soundLog) count(kind SoundKind) int {
	n := 0
	for _, k := range l.kinds {
		if k == kind {
			n++
		}
	}
	return n
}

// recordingSurface logs the order of draw requests.
type recordingSurface struct {
	calls []string
	score int
	rings int
}

func (r *recordingSurface) Clear() { r.calls = append(r.calls, "clear") }

func (r *recordingSurface) FillTerrain(x, width, top, bottom float64) {
	if n := len(r.calls); n == 0 || r.calls[n-1] != "terrain" {
		r.calls = append(r.calls, "terrain")
	}
}

func (r *recordingSurface) DrawActor(center core.Point, radius float64) {
	r.calls = append(r.calls, "actor")
}

func (r *recordingSurface) DrawRing(center core.Point, outer, inner float64) {
	if n := len(r.calls); n == 0 || r.calls[n-1] != "rings" {
		r.calls = append(r.calls, "rings")
	}
	r.rings++
}

func (r *recordingSurface) DrawScore(score int) {
	r.calls = append(r.calls, "score")
	r.score = score
}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func flatGround(y float64) GroundFunc {
	return func(float64) float64 { return y }
}

// screenRow returns row y of the screen as plain text.
func screenRow(s *core.Screen, y int) string {
	return strings.Split(s.String(), "\n")[y]
}
