package constants

import "time"

// World geometry. The simulation runs in a fixed 800x600 virtual pixel
// space; the renderer maps it onto whatever cell grid the terminal has.
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Game loop timing.
const (
	// FrameInterval caps the main loop at ~60 FPS.
	FrameInterval = 16 * time.Millisecond

	// OrbSpawnInterval is the seconds between automatic orb spawns. The
	// spawn accumulator resets to zero rather than the remainder, so the
	// effective interval drifts by up to one frame.
	OrbSpawnInterval = 0.7
)

// Orb tuning.
const (
	MaxOrbs = 50

	OrbRadiusMin = 15
	OrbRadiusVar = 10 // radius = OrbRadiusMin + [0, OrbRadiusVar)

	OrbFallSpeed = 200 // px/s

	// OrbColorFloor keeps every spawned color channel at or above this
	// value so orbs stay visible against the black background.
	OrbColorFloor = 50
)

// Paddle geometry. The paddle center rides PaddleLift px above the world
// bottom and follows the mouse horizontally.
const (
	PaddleWidth  = 120
	PaddleHeight = 20
	PaddleLift   = 20
)
