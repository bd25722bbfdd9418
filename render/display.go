package render

import "github.com/halvard/orbfall/game"

// Display is the rendering and input boundary the game runs against. The
// simulation never touches it; the shell in cmd/orbfall owns the only
// instance and calls it strictly from the main loop goroutine.
//
// Drawing coordinates are world pixels (see constants.WorldWidth/Height)
// except Text, which addresses terminal cells directly.
type Display interface {
	// Init acquires the screen; Fini releases it. Fini is safe after a
	// failed Init.
	Init() error
	Fini()

	// Poll drains pending input without blocking, updating the mouse
	// position, close request, and cell geometry.
	Poll()

	// MouseX returns the pointer's horizontal position in world pixels.
	MouseX() float64

	// ShouldClose reports whether termination was requested. Checked once
	// per frame at the top of the loop; the frame in progress always
	// completes.
	ShouldClose() bool

	// BeginFrame clears the frame; EndFrame presents it.
	BeginFrame()
	EndFrame()

	FillRect(r game.Rect, c game.Color)
	FillCircle(center game.Vec2, radius float64, c game.Color)
	Point(p game.Vec2, c game.Color)
	Text(cellX, cellY int, s string, c game.Color)
}
