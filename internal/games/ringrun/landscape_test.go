package ringrun

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/ring-runner/internal/config"
)

func newTestLandscape(t *testing.T, cfg config.LandscapeConfig) *Landscape {
	t.Helper()
	l, err := NewLandscape(cfg, 600, 1)
	if err != nil {
		t.Fatalf("NewLandscape: %v", err)
	}
	return l
}

func TestBaseline(t *testing.T) {
	if got := Baseline(600); got != 400 {
		t.Errorf("Baseline(600) = %g, want 400", got)
	}
}

func TestLandscapeHundredTicks(t *testing.T) {
	cfg := testConfig().Landscape
	l := newTestLandscape(t, cfg)
	const x = 137.0

	heights := make([]float64, 0, 100)
	for i := 1; i <= 100; i++ {
		l.Advance()
		if want := float64(i) * cfg.Speed; math.Abs(l.Phase()-want) > 1e-9 {
			t.Fatalf("tick %d: phase = %g, want %g", i, l.Phase(), want)
		}
		h := l.HeightAt(x)
		if math.Abs(h-l.Baseline()) > cfg.Amplitude+1e-9 {
			t.Fatalf("tick %d: height %g outside amplitude %g of %g", i, h, cfg.Amplitude, l.Baseline())
		}
		heights = append(heights, h)
	}

	// With speed 0.1 the sequence repeats every 2*pi/0.1 ticks, so it must
	// swing through both halves of the wave within 100 ticks.
	lo, hi := heights[0], heights[0]
	for _, h := range heights {
		lo = math.Min(lo, h)
		hi = math.Max(hi, h)
	}
	if hi-lo < cfg.Amplitude {
		t.Errorf("height range %g too small for amplitude %g", hi-lo, cfg.Amplitude)
	}
}

func TestLandscapePeriodic(t *testing.T) {
	cfg := testConfig().Landscape
	l := newTestLandscape(t, cfg)

	before := l.HeightAt(42)
	l.phase += 2 * math.Pi
	after := l.HeightAt(42)
	if math.Abs(before-after) > 1e-9 {
		t.Errorf("HeightAt not periodic in phase: %g vs %g", before, after)
	}
}

func TestLandscapeScrollsLeft(t *testing.T) {
	cfg := testConfig().Landscape
	l := newTestLandscape(t, cfg)

	// After one tick the terrain at x matches what was at x+ScrollSpeed.
	const x = 200.0
	ahead := l.HeightAt(x + l.ScrollSpeed())
	l.Advance()
	if got := l.HeightAt(x); math.Abs(got-ahead) > 1e-9 {
		t.Errorf("HeightAt(%g) = %g, want %g", x, got, ahead)
	}
}

func TestLandscapeDetailScrollsWithTerrain(t *testing.T) {
	cfg := testConfig().Landscape
	cfg.Detail = 8
	l := newTestLandscape(t, cfg)

	const x = 300.0
	ahead := l.HeightAt(x + l.ScrollSpeed())
	l.Advance()
	if got := l.HeightAt(x); math.Abs(got-ahead) > 1e-6 {
		t.Errorf("HeightAt(%g) = %g, want %g", x, got, ahead)
	}

	for i := 0; i < 100; i++ {
		l.Advance()
		if h := l.HeightAt(x); math.Abs(h-l.Baseline()) > cfg.Amplitude+cfg.Detail {
			t.Fatalf("height %g outside amplitude+detail", h)
		}
	}
}

func TestLandscapeDrawCoversWidth(t *testing.T) {
	l := newTestLandscape(t, testConfig().Landscape)
	rec := &columnSurface{}

	l.Draw(rec, 800, 600, 10)

	if len(rec.xs) != 80 {
		t.Fatalf("columns = %d, want 80", len(rec.xs))
	}
	for i, x := range rec.xs {
		if x != float64(i)*10 {
			t.Errorf("column %d at %g, want %g", i, x, float64(i)*10)
		}
	}
}

func TestNewLandscapeRejectsInvalid(t *testing.T) {
	cfg := testConfig().Landscape
	cfg.Frequency = 0
	if _, err := NewLandscape(cfg, 600, 1); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("zero frequency: err = %v, want ErrInvalid", err)
	}
	if _, err := NewLandscape(testConfig().Landscape, 0, 1); !errors.Is(err, config.ErrInvalid) {
		t.Errorf("zero height: err = %v, want ErrInvalid", err)
	}
}

// columnSurface records terrain column offsets.
type columnSurface struct {
	NopSurface
	xs []float64
}

func (c *columnSurface) FillTerrain(x, width, top, bottom float64) {
	c.xs = append(c.xs, x)
}
