// Package view draws a tour as a scaled plot on a terminal screen.
//
// Node coordinates are mapped linearly into the screen area below a one-line
// title, preserving orientation (larger y is drawn higher). Edges of the closed
// cycle are rasterized with Bresenham lines, then nodes are drawn on top so
// they are never hidden by a path.
package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gatsp/tsp"
)

// Glyphs used by Draw.
const (
	NodeRune  = 'o'
	StartRune = '@'
	PathRune  = '.'
)

var (
	titleStyle = tcell.StyleDefault.Bold(true)
	pathStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	nodeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	startStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

// Draw clears s and renders title on row 0 and the tour's closed cycle in the
// rows below. The first node of the tour is drawn with StartRune. Unfilled
// slots are skipped. Draw does not call Show.
func Draw(s tcell.Screen, t *tsp.Tour, title string) {
	s.Clear()
	w, h := s.Size()
	drawText(s, 0, 0, w, title, titleStyle)
	if t == nil || h < 2 || w < 1 {
		return
	}

	nodes := filledNodes(t)
	if len(nodes) == 0 {
		return
	}
	m := newMapping(nodes, w, h-1)

	var (
		i      int
		x0, y0 int
		x1, y1 int
	)
	if len(nodes) > 1 {
		for i = range nodes {
			x0, y0 = m.cell(nodes[i])
			x1, y1 = m.cell(nodes[(i+1)%len(nodes)])
			line(x0, y0, x1, y1, func(x, y int) {
				s.SetContent(x, y, PathRune, nil, pathStyle)
			})
		}
	}
	for i = range nodes {
		x0, y0 = m.cell(nodes[i])
		if i == 0 {
			s.SetContent(x0, y0, StartRune, nil, startStyle)
			continue
		}
		s.SetContent(x0, y0, NodeRune, nil, nodeStyle)
	}
}

// Show opens the terminal, draws the tour and waits until a key is pressed
// or the terminal is closed.
func Show(t *tsp.Tour, title string) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = s.Init(); err != nil {
		return err
	}
	defer s.Fini()

	Draw(s, t, title)
	s.Show()
	for {
		switch s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
			Draw(s, t, title)
			s.Show()
		case *tcell.EventKey:
			return nil
		case nil:
			return nil
		}
	}
}

func filledNodes(t *tsp.Tour) []tsp.Node {
	out := make([]tsp.Node, 0, t.Len())
	var (
		i  int
		n  tsp.Node
		ok bool
	)
	for i = 0; i < t.Len(); i++ {
		if n, ok = t.Node(i); ok {
			out = append(out, n)
		}
	}
	return out
}

func drawText(s tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) {
	var r rune
	for _, r = range text {
		if x >= maxWidth {
			return
		}
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// mapping scales node coordinates into a w×h area starting at row 1.
type mapping struct {
	minX, minY int
	spanX      int
	spanY      int
	w, h       int
}

func newMapping(nodes []tsp.Node, w, h int) mapping {
	m := mapping{minX: nodes[0].X, minY: nodes[0].Y, w: w, h: h}
	maxX, maxY := nodes[0].X, nodes[0].Y
	var n tsp.Node
	for _, n = range nodes[1:] {
		m.minX = min(m.minX, n.X)
		m.minY = min(m.minY, n.Y)
		maxX = max(maxX, n.X)
		maxY = max(maxY, n.Y)
	}
	m.spanX = maxX - m.minX
	m.spanY = maxY - m.minY
	return m
}

// cell returns the screen column and row for n.
func (m mapping) cell(n tsp.Node) (int, int) {
	var x, y int
	if m.spanX > 0 {
		x = (n.X - m.minX) * (m.w - 1) / m.spanX
	}
	if m.spanY > 0 {
		y = (n.Y - m.minY) * (m.h - 1) / m.spanY
	}
	// Flip so larger y is higher; row 0 is the title.
	return x, 1 + (m.h - 1) - y
}

// line calls plot for every cell of the Bresenham line from (x0,y0) to (x1,y1).
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
