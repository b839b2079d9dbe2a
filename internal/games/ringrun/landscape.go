package ringrun

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/vovakirdan/ring-runner/internal/config"
	"github.com/vovakirdan/ring-runner/internal/core"
)

// Landscape is the scrolling terrain. It holds no entities, only a phase
// accumulator that moves a periodic height function to the left.
type Landscape struct {
	amplitude float64
	frequency float64
	speed     float64 // phase radians per tick
	phase     float64 // grows without bound; sin wraps it
	baseline  float64

	detail      float64
	detailScale float64
	noise       opensimplex.Noise
}

// Baseline returns the nominal surface line for a surface of the given height.
func Baseline(height float64) float64 {
	return height - height/3
}

// NewLandscape creates terrain for a surface of the given height.
func NewLandscape(cfg config.LandscapeConfig, height float64, seed int64) (*Landscape, error) {
	if !core.Finite(height) || height <= 0 {
		return nil, fmt.Errorf("%w: surface height %g", config.ErrInvalid, height)
	}
	if cfg.Frequency <= 0 || cfg.Amplitude < 0 || cfg.Speed < 0 {
		return nil, fmt.Errorf("%w: landscape amplitude/frequency/speed", config.ErrInvalid)
	}

	l := &Landscape{
		amplitude:   cfg.Amplitude,
		frequency:   cfg.Frequency,
		speed:       cfg.Speed,
		baseline:    Baseline(height),
		detail:      cfg.Detail,
		detailScale: cfg.DetailScale,
	}
	if l.detail > 0 {
		l.noise = opensimplex.New(seed)
	}
	return l, nil
}

// Advance moves the terrain by one tick.
func (l *Landscape) Advance() {
	l.phase += l.speed
}

// HeightAt returns the y of the terrain surface at horizontal offset x.
func (l *Landscape) HeightAt(x float64) float64 {
	h := l.baseline + l.amplitude*math.Sin(l.frequency*x+l.phase)
	if l.noise != nil {
		// Sample in world space so the detail scrolls with the sinusoid.
		u := (x + l.phase/l.frequency) / l.detailScale
		h += l.detail * l.noise.Eval2(u, 0)
	}
	return h
}

// Baseline returns the nominal surface line.
func (l *Landscape) Baseline() float64 {
	return l.baseline
}

// Phase returns the accumulated phase.
func (l *Landscape) Phase() float64 {
	return l.phase
}

// ScrollSpeed is the scroll speed converted to world units per tick. Advance
// moves the phase by speed radians, and the wave covers frequency radians per
// unit, so the terrain pattern slides left by speed/frequency units. Rings
// move by this amount so both scroll at one speed and stay fixed relative to
// the ground.
func (l *Landscape) ScrollSpeed() float64 {
	return l.speed / l.frequency
}

// Draw fills the silhouette from the surface down to bottom, one column per stride.
func (l *Landscape) Draw(s Surface, width, bottom, stride float64) {
	for x := 0.0; x < width; x += stride {
		s.FillTerrain(x, stride, l.HeightAt(x), bottom)
	}
}
