package ringrun

import (
	"fmt"
	"math"

	"github.com/vovakirdan/ring-runner/internal/core"
)

// Visual characters for rendering
const (
	GrassChar     = '█'
	GrassHalfChar = '▄'
	GrassLowChar  = '▁'
	ActorChar     = '█'
	ActorEyeChar  = '●'
	RingChar      = 'o'
	RingSmallChar = 'O'
)

// ScreenSurface draws world-unit geometry onto a character screen.
// A cell covers cellW x cellH world units.
type ScreenSurface struct {
	dst   *core.Screen
	cellW float64
	cellH float64
}

// NewScreenSurface creates a surface over dst.
func NewScreenSurface(dst *core.Screen, cellW, cellH float64) *ScreenSurface {
	return &ScreenSurface{dst: dst, cellW: cellW, cellH: cellH}
}

// Clear wipes the screen.
func (s *ScreenSurface) Clear() {
	s.dst.Clear()
}

// FillTerrain fills the cells under [x, x+width) from top down to bottom.
// The top cell gets a partial block depending on where the surface falls in it.
func (s *ScreenSurface) FillTerrain(x, width, top, bottom float64) {
	col0 := int(math.Floor(x / s.cellW))
	col1 := int(math.Ceil((x + width) / s.cellW))
	if col1 <= col0 {
		col1 = col0 + 1
	}

	rowF := top / s.cellH
	row := int(math.Floor(rowF))
	last := int(math.Ceil(bottom / s.cellH))

	topChar := GrassChar
	switch frac := rowF - float64(row); {
	case frac >= 0.75:
		topChar = GrassLowChar
	case frac >= 0.25:
		topChar = GrassHalfChar
	}

	for c := col0; c < col1; c++ {
		s.dst.SetColored(c, row, topChar, core.ColorGrassTop)
		s.dst.DrawVLine(c, row+1, last-row-1, GrassChar, core.ColorGrass)
	}
}

// DrawActor fills every cell whose centre lies inside the body and adds an eye.
func (s *ScreenSurface) DrawActor(center core.Point, radius float64) {
	if !s.fillDisc(center, radius, 0, ActorChar, core.ColorActor) {
		s.setAt(center, ActorChar, core.ColorActor)
	}
	eye := core.Point{X: center.X + radius*0.4, Y: center.Y - radius*0.3}
	s.setAt(eye, ActorEyeChar, core.ColorActorEye)
}

// DrawRing draws the annulus, or a single marker when the ring is smaller than a cell.
func (s *ScreenSurface) DrawRing(center core.Point, outer, inner float64) {
	if !s.fillDisc(center, outer, inner, RingChar, core.ColorRing) {
		s.setAt(center, RingSmallChar, core.ColorRing)
	}
}

// DrawScore draws the score in the top-left corner.
func (s *ScreenSurface) DrawScore(score int) {
	text := fmt.Sprintf(" Score: %d ", score)
	for i, r := range text {
		s.dst.SetColored(2+i, 0, r, core.ColorScore)
	}
}

// fillDisc sets cells whose centres are within [inner, outer] of center.
// Returns false when no cell qualified.
func (s *ScreenSurface) fillDisc(center core.Point, outer, inner float64, r rune, c core.Color) bool {
	col0 := int(math.Floor((center.X - outer) / s.cellW))
	col1 := int(math.Floor((center.X + outer) / s.cellW))
	row0 := int(math.Floor((center.Y - outer) / s.cellH))
	row1 := int(math.Floor((center.Y + outer) / s.cellH))

	drawn := false
	for row := row0; row <= row1; row++ {
		for col := col0; col <= col1; col++ {
			p := core.Point{X: (float64(col) + 0.5) * s.cellW, Y: (float64(row) + 0.5) * s.cellH}
			d := core.Dist(center, p)
			if d <= outer && d >= inner {
				s.dst.SetColored(col, row, r, c)
				drawn = true
			}
		}
	}
	return drawn
}

// setAt sets the cell containing p.
func (s *ScreenSurface) setAt(p core.Point, r rune, c core.Color) {
	col := int(math.Floor(p.X / s.cellW))
	row := int(math.Floor(p.Y / s.cellH))
	s.dst.SetColored(col, row, r, c)
}
