package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/halvard/orbfall/game"
)

func TestScreenCellMapping(t *testing.T) {
	// 80x30 cells over the 800x600 world: each cell is 10x20 world pixels.
	s := &Screen{cols: 80, rows: 30}

	if got := s.cellW(); got != 10 {
		t.Errorf("Expected cell width 10, got %v", got)
	}
	if got := s.cellH(); got != 20 {
		t.Errorf("Expected cell height 20, got %v", got)
	}

	tests := []struct {
		name   string
		p      game.Vec2
		cx, cy int
	}{
		{"Origin", game.Vec2{}, 0, 0},
		{"Mid world", game.Vec2{X: 400, Y: 300}, 40, 15},
		{"Inside a cell", game.Vec2{X: 409.9, Y: 319.9}, 40, 15},
		{"Bottom right corner cell", game.Vec2{X: 799, Y: 599}, 79, 29},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := s.cellOf(tt.p)
			if cx != tt.cx || cy != tt.cy {
				t.Errorf("Expected cell (%d,%d), got (%d,%d)", tt.cx, tt.cy, cx, cy)
			}
		})
	}

	r := s.cellRect(40, 15)
	want := game.Rect{X: 400, Y: 300, W: 10, H: 20}
	if r != want {
		t.Errorf("Expected cell rect %+v, got %+v", want, r)
	}
}

func TestScreenHandleEvent(t *testing.T) {
	s := &Screen{cols: 80, rows: 30}

	// Mouse cell 40 maps to the world x of that cell's center.
	s.handleEvent(tcell.NewEventMouse(40, 10, tcell.ButtonNone, 0))
	if s.mouseX != 405 {
		t.Errorf("Expected mouse x 405 for cell 40, got %v", s.mouseX)
	}

	s.handleEvent(tcell.NewEventResize(100, 50))
	if s.cols != 100 || s.rows != 50 {
		t.Errorf("Expected geometry 100x50 after resize, got %dx%d", s.cols, s.rows)
	}

	if s.ShouldClose() {
		t.Fatal("Expected no close request yet")
	}
	s.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', 0))
	if !s.ShouldClose() {
		t.Error("Expected 'q' to request close")
	}

	s2 := &Screen{cols: 80, rows: 30}
	s2.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, 0))
	if !s2.ShouldClose() {
		t.Error("Expected Escape to request close")
	}

	// Unrelated keys do not close.
	s3 := &Screen{cols: 80, rows: 30}
	s3.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', 0))
	if s3.ShouldClose() {
		t.Error("Expected 'x' not to request close")
	}
}
