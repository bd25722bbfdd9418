package game

// Particle is a short-lived visual-effect point spawned on orb catch or
// miss. Life counts down in seconds; the slot is released once it reaches
// zero during update.
type Particle struct {
	Pos   Vec2
	Vel   Vec2
	Color Color
	Life  float64
}
