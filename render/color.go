package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/halvard/orbfall/game"
)

// Scale multiplies each color channel by f, clamping into [0,255]. Against
// the black background this doubles as alpha compositing.
func Scale(c game.Color, f float64) game.Color {
	return game.Color{
		R: clampChannel(float64(c.R) * f),
		G: clampChannel(float64(c.G) * f),
		B: clampChannel(float64(c.B) * f),
		A: c.A,
	}
}

func clampChannel(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

func toTcell(c game.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
