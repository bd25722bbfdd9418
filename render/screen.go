package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/halvard/orbfall/constants"
	"github.com/halvard/orbfall/game"
)

// Screen implements Display on a tcell terminal. The 800x600 world maps
// onto the cell grid by scaling, so the playfield always fills the
// terminal; cells are fat pixels. A pump goroutine feeds tcell events into
// a buffered channel and Poll drains it on the main loop, so all state
// mutation stays on one goroutine.
type Screen struct {
	screen tcell.Screen
	events chan tcell.Event

	cols, rows int
	mouseX     float64 // world pixels
	closing    bool
}

func NewScreen() *Screen {
	return &Screen{mouseX: constants.WorldWidth / 2}
}

func (s *Screen) Init() error {
	sc, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := sc.Init(); err != nil {
		return err
	}
	sc.EnableMouse()
	sc.HideCursor()
	sc.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	sc.SetTitle("Catch the Orbs")

	s.screen = sc
	s.cols, s.rows = sc.Size()
	s.events = make(chan tcell.Event, 64)

	go func() {
		for {
			ev := sc.PollEvent()
			if ev == nil {
				// Screen finalized.
				return
			}
			s.events <- ev
		}
	}()

	return nil
}

func (s *Screen) Fini() {
	if s.screen != nil {
		s.screen.Fini()
	}
}

func (s *Screen) Poll() {
	for {
		select {
		case ev := <-s.events:
			s.handleEvent(ev)
		default:
			return
		}
	}
}

func (s *Screen) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			s.closing = true
		}
	case *tcell.EventMouse:
		cx, _ := ev.Position()
		s.mouseX = (float64(cx) + 0.5) * s.cellW()
	case *tcell.EventResize:
		s.cols, s.rows = ev.Size()
		if s.screen != nil {
			s.screen.Sync()
		}
	}
}

func (s *Screen) MouseX() float64 {
	return s.mouseX
}

func (s *Screen) ShouldClose() bool {
	return s.closing
}

func (s *Screen) BeginFrame() {
	s.screen.Clear()
}

func (s *Screen) EndFrame() {
	s.screen.Show()
}

// cellW and cellH are the world-pixel dimensions of one terminal cell.
func (s *Screen) cellW() float64 {
	if s.cols <= 0 {
		return constants.WorldWidth
	}
	return constants.WorldWidth / float64(s.cols)
}

func (s *Screen) cellH() float64 {
	if s.rows <= 0 {
		return constants.WorldHeight
	}
	return constants.WorldHeight / float64(s.rows)
}

// cellRect returns the world-space rectangle covered by cell (cx, cy).
func (s *Screen) cellRect(cx, cy int) game.Rect {
	cw, ch := s.cellW(), s.cellH()
	return game.Rect{X: float64(cx) * cw, Y: float64(cy) * ch, W: cw, H: ch}
}

func (s *Screen) cellOf(p game.Vec2) (int, int) {
	return int(p.X / s.cellW()), int(p.Y / s.cellH())
}

// FillRect paints every cell whose world-space footprint overlaps r. The
// overlap test (rather than a cell-center test) keeps thin shapes like the
// paddle visible on coarse grids.
func (s *Screen) FillRect(r game.Rect, c game.Color) {
	x0, y0 := s.cellOf(game.Vec2{X: r.X, Y: r.Y})
	x1, y1 := s.cellOf(game.Vec2{X: r.X + r.W, Y: r.Y + r.H})
	style := tcell.StyleDefault.Background(toTcell(c))
	for cy := max(y0, 0); cy <= y1 && cy < s.rows; cy++ {
		for cx := max(x0, 0); cx <= x1 && cx < s.cols; cx++ {
			cell := s.cellRect(cx, cy)
			if cell.X < r.X+r.W && cell.X+cell.W > r.X &&
				cell.Y < r.Y+r.H && cell.Y+cell.H > r.Y {
				s.screen.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}
}

// FillCircle paints every cell whose footprint intersects the circle,
// reusing the simulation's circle-vs-rect test per cell.
func (s *Screen) FillCircle(center game.Vec2, radius float64, c game.Color) {
	x0, y0 := s.cellOf(game.Vec2{X: center.X - radius, Y: center.Y - radius})
	x1, y1 := s.cellOf(game.Vec2{X: center.X + radius, Y: center.Y + radius})
	style := tcell.StyleDefault.Background(toTcell(c))
	for cy := max(y0, 0); cy <= y1 && cy < s.rows; cy++ {
		for cx := max(x0, 0); cx <= x1 && cx < s.cols; cx++ {
			if game.CircleRectOverlap(center, radius, s.cellRect(cx, cy)) {
				s.screen.SetContent(cx, cy, ' ', nil, style)
			}
		}
	}
}

// Point draws a single faded dot. Alpha is composited by scaling the color
// toward the black background.
func (s *Screen) Point(p game.Vec2, c game.Color) {
	cx, cy := s.cellOf(p)
	if cx < 0 || cx >= s.cols || cy < 0 || cy >= s.rows {
		return
	}
	faded := Scale(c, float64(c.A)/255)
	s.screen.SetContent(cx, cy, '•', nil, tcell.StyleDefault.Foreground(toTcell(faded)))
}

func (s *Screen) Text(cellX, cellY int, text string, c game.Color) {
	style := tcell.StyleDefault.Foreground(toTcell(c))
	x := cellX
	for _, r := range text {
		if x >= s.cols {
			break
		}
		s.screen.SetContent(x, cellY, r, nil, style)
		x++
	}
}
