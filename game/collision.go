package game

// CircleRectOverlap reports whether a circle intersects an axis-aligned
// rectangle: clamp the circle center onto the rectangle and compare the
// remaining distance against the radius. Touching counts as overlap.
func CircleRectOverlap(center Vec2, radius float64, r Rect) bool {
	cx := clamp(center.X, r.X, r.X+r.W)
	cy := clamp(center.Y, r.Y, r.Y+r.H)
	dx := center.X - cx
	dy := center.Y - cy
	return dx*dx+dy*dy <= radius*radius
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
