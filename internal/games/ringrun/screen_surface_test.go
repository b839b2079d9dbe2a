package ringrun

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ring-runner/internal/core"
)

func TestScreenSurfaceFillTerrain(t *testing.T) {
	screen := core.NewScreen(10, 10)
	s := NewScreenSurface(screen, 10, 20)

	// Surface at y=100 is the top of row 5.
	s.FillTerrain(20, 10, 100, 200)

	if got := screen.GetCell(2, 5); got.Rune != GrassChar || got.Color != core.ColorGrassTop {
		t.Errorf("top cell = %q/%v", got.Rune, got.Color)
	}
	for y := 6; y < 10; y++ {
		if got := screen.GetCell(2, y); got.Rune != GrassChar || got.Color != core.ColorGrass {
			t.Errorf("row %d = %q/%v, want grass", y, got.Rune, got.Color)
		}
	}
	if got := screen.GetCell(2, 4).Rune; got != ' ' {
		t.Errorf("above surface = %q, want blank", got)
	}
	if got := screen.GetCell(1, 6).Rune; got != ' ' {
		t.Errorf("neighbour column = %q, want blank", got)
	}
}

func TestScreenSurfacePartialTop(t *testing.T) {
	tests := []struct {
		top  float64
		want rune
	}{
		{100, GrassChar},
		{106, GrassHalfChar},
		{116, GrassLowChar},
	}

	for _, tt := range tests {
		screen := core.NewScreen(4, 10)
		NewScreenSurface(screen, 10, 20).FillTerrain(0, 10, tt.top, 200)
		if got := screen.GetCell(0, 5).Rune; got != tt.want {
			t.Errorf("top=%g: got %q, want %q", tt.top, got, tt.want)
		}
	}
}

func TestScreenSurfaceDrawActor(t *testing.T) {
	screen := core.NewScreen(20, 10)
	s := NewScreenSurface(screen, 10, 20)

	s.DrawActor(core.Point{X: 50, Y: 100}, 20)

	if got := screen.GetCell(5, 5); got.Color != core.ColorActor && got.Color != core.ColorActorEye {
		t.Errorf("centre cell colour = %v", got.Color)
	}
	// Eye sits up and to the right of the centre.
	if got := screen.GetCell(5, 4).Rune; got != ActorEyeChar {
		t.Errorf("eye cell = %q, want %q", got, ActorEyeChar)
	}
}

func TestScreenSurfaceSmallRing(t *testing.T) {
	screen := core.NewScreen(20, 10)
	s := NewScreenSurface(screen, 10, 20)

	// A ring between cell centres still shows up.
	s.DrawRing(core.Point{X: 60, Y: 60}, 4, 0)

	if got := screen.GetCell(6, 3).Rune; got != RingSmallChar {
		t.Errorf("ring marker = %q, want %q", got, RingSmallChar)
	}
}

func TestScreenSurfaceOffScreenIgnored(t *testing.T) {
	screen := core.NewScreen(5, 5)
	s := NewScreenSurface(screen, 10, 20)

	s.DrawRing(core.Point{X: -100, Y: 50}, 10, 0)
	s.DrawActor(core.Point{X: 500, Y: 50}, 20)

	for y := 0; y < 5; y++ {
		if row := screenRow(screen, y); row != "     " {
			t.Errorf("row %d = %q, want blank", y, row)
		}
	}
}

func TestScreenSurfaceScore(t *testing.T) {
	screen := core.NewScreen(20, 3)
	NewScreenSurface(screen, 10, 20).DrawScore(40)

	if got := screenRow(screen, 0); !strings.HasPrefix(got, "   Score: 40 ") {
		t.Errorf("row 0 = %q", got)
	}
}
