package ringrun

import "github.com/vovakirdan/ring-runner/internal/core"

// Surface is the render capability the frame driver draws through.
// All coordinates are world units; the implementation decides how they map
// onto its medium.
type Surface interface {
	// Clear wipes the previous frame.
	Clear()
	// FillTerrain fills the column [x, x+width) from top down to bottom.
	FillTerrain(x, width, top, bottom float64)
	// DrawActor draws the player body.
	DrawActor(center core.Point, radius float64)
	// DrawRing draws one uncollected ring. inner is 0 for a solid ring.
	DrawRing(center core.Point, outer, inner float64)
	// DrawScore draws the score overlay.
	DrawScore(score int)
}

// NopSurface draws nothing. Used for headless simulation.
type NopSurface struct{}

func (NopSurface) Clear() {}
func (NopSurface) FillTerrain(x, width, top, bottom float64) {}
func (NopSurface) DrawActor(center core.Point, radius float64) {}
func (NopSurface) DrawRing(center core.Point, outer, inner float64) {}
func (NopSurface) DrawScore(score int) {}
