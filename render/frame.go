package render

import (
	"fmt"

	"github.com/halvard/orbfall/game"
)

// Frame draws one complete frame: paddle, active orbs, live particles, and
// the score counter, bracketed by BeginFrame/EndFrame.
func Frame(d Display, w *game.World, paddleX float64) {
	d.BeginFrame()

	d.FillRect(w.PaddleRect(paddleX), game.ColorPaddle)

	for i := 0; i < w.Orbs.Cap(); i++ {
		if w.Orbs.State(i) != game.SlotActive {
			continue
		}
		o := w.Orbs.At(i)
		d.FillCircle(o.Pos, o.Radius, o.Color)
	}

	for i := 0; i < w.Particles.Cap(); i++ {
		if w.Particles.State(i) != game.SlotActive {
			continue
		}
		p := w.Particles.At(i)
		c := p.Color
		// Linear fade by remaining life. Life never exceeds 1.0, so the
		// product stays in range without clamping.
		c.A = uint8(255 * p.Life)
		d.Point(p.Pos, c)
	}

	d.Text(1, 0, fmt.Sprintf("Score: %02d", w.Score), game.ColorScore)

	d.EndFrame()
}
