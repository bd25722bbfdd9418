package game

// Color is an RGBA color in the simulation's own terms. It lives here
// rather than in the render package so the simulation never depends on the
// renderer (same decoupling the splash colors use in vi-fighter).
type Color struct {
	R, G, B, A uint8
}

var (
	// ColorPaddle is the light gray of the player paddle.
	ColorPaddle = Color{R: 200, G: 200, B: 200, A: 255}

	// ColorScore is the off-white of the score text.
	ColorScore = Color{R: 245, G: 245, B: 245, A: 255}
)
