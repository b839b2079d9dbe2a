package core

// Color represents a foreground color for a screen cell.
// The platform maps each entry to an ANSI 256-color code.
type Color uint8

// Palette used by the runner's terminal surface.
const (
	ColorDefault Color = iota
	ColorGrass         // terrain silhouette
	ColorGrassTop      // terrain surface line
	ColorActor         // player body
	ColorActorEye      // player decoration
	ColorRing          // ring body
	ColorScore         // score overlay
	ColorDim           // help line and overlay hints
)
