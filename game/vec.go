package game

// Vec2 is a 2D vector in world pixels. Y grows downward.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{X: v.X * f, Y: v.Y * f}
}

// Rect is an axis-aligned rectangle with top-left origin.
type Rect struct {
	X, Y, W, H float64
}
