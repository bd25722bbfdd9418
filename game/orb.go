package game

// Orb is a falling circular target. Slot occupancy is tracked by the pool,
// not by a flag on the orb itself.
type Orb struct {
	Pos    Vec2
	Radius float64
	Color  Color
}
