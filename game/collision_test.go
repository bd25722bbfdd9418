package game

import "testing"

func TestCircleRectOverlap(t *testing.T) {
	// The paddle rectangle for a mouse at x=400: x in [340,460], y in [570,590].
	paddle := Rect{X: 340, Y: 570, W: 120, H: 20}

	tests := []struct {
		name   string
		center Vec2
		radius float64
		want   bool
	}{
		{"Center inside rect", Vec2{X: 400, Y: 580}, 15, true},
		{"Circle above, overlapping top edge", Vec2{X: 400, Y: 560}, 15, true},
		{"Circle touching top edge exactly", Vec2{X: 400, Y: 555}, 15, true},
		{"Circle just above reach", Vec2{X: 400, Y: 554.9}, 15, false},
		{"Far above the paddle", Vec2{X: 400, Y: 300}, 15, false},
		{"Left of rect, overlapping", Vec2{X: 330, Y: 580}, 15, true},
		{"Left of rect, out of reach", Vec2{X: 320, Y: 580}, 15, false},
		{"Corner diagonal, overlapping", Vec2{X: 332, Y: 562}, 15, true},
		{"Corner diagonal, out of reach", Vec2{X: 328, Y: 558}, 15, false},
		{"Below rect, overlapping bottom edge", Vec2{X: 400, Y: 600}, 15, true},
		{"Zero radius inside", Vec2{X: 350, Y: 575}, 0, true},
		{"Zero radius outside", Vec2{X: 350, Y: 569}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CircleRectOverlap(tt.center, tt.radius, paddle)
			if got != tt.want {
				t.Errorf("Expected overlap to be %v for center=%v r=%v, got %v",
					tt.want, tt.center, tt.radius, got)
			}
		})
	}
}
