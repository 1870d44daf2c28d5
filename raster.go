package main

import (
	"math"
	"sort"
	"strings"
)

// raster draws surfaces onto a grid of terminal cells, each cell standing
// for cellW×cellH pixels.
type raster struct {
	cells [][]rune
	cellW float64
	cellH float64
}

func newRaster(cols, rows int, cellW, cellH float64) *raster {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	cells := make([][]rune, rows)
	for i := range cells {
		cells[i] = make([]rune, cols)
		for j := range cells[i] {
			cells[i][j] = ' '
		}
	}
	return &raster{cells: cells, cellW: cellW, cellH: cellH}
}

func (r *raster) col(x float64) int { return int(math.Floor(x / r.cellW)) }
func (r *raster) row(y float64) int { return int(math.Floor(y / r.cellH)) }

func (r *raster) set(x, y int, ch rune) {
	if y >= 0 && y < len(r.cells) && x >= 0 && x < len(r.cells[y]) {
		r.cells[y][x] = ch
	}
}

type cellRect struct {
	left, top, right, bottom int
}

func (r *raster) drawFrame(rc cellRect, corner, horizontal, vertical rune) {
	for y := rc.top; y <= rc.bottom; y++ {
		for x := rc.left; x <= rc.right; x++ {
			switch {
			case (y == rc.top || y == rc.bottom) && (x == rc.left || x == rc.right):
				r.set(x, y, corner)
			case y == rc.top || y == rc.bottom:
				r.set(x, y, horizontal)
			case x == rc.left || x == rc.right:
				r.set(x, y, vertical)
			default:
				r.set(x, y, ' ')
			}
		}
	}
}

type rasterText struct {
	node *Node
	x, y float64
	row  int
}

// drawSurface draws the surface's panel as a bordered box and its texts
// inside it. Texts on distinct baselines get distinct cell rows, and the
// panel grows downwards when its rows need more cells than its height.
func (r *raster) drawSurface(s *Surface, selected bool) {
	pos, size, ok := s.Bounds()
	if !ok {
		return
	}
	rc := cellRect{
		left:   r.col(pos.X),
		top:    r.row(pos.Y),
		right:  r.col(pos.X + size.Width - 1),
		bottom: r.row(pos.Y + size.Height - 1),
	}
	if rc.right-rc.left < 2 {
		rc.right = rc.left + 2
	}
	if rc.bottom-rc.top < 2 {
		rc.bottom = rc.top + 2
	}

	var texts []rasterText
	s.Walk(func(n *Node, off Point) {
		if n.Kind != KindText || n.Text == "" || hiddenText(n.Style) {
			return
		}
		texts = append(texts, rasterText{node: n, x: off.X + n.X, y: off.Y + n.Y})
	})
	sort.SliceStable(texts, func(i, j int) bool { return texts[i].y < texts[j].y })
	next := rc.top + 1
	for i := range texts {
		if i > 0 && texts[i].y == texts[i-1].y {
			texts[i].row = texts[i-1].row
			continue
		}
		texts[i].row = max(r.row(texts[i].y-1), next)
		next = texts[i].row + 1
	}
	rc.bottom = max(rc.bottom, next)

	if selected {
		r.drawFrame(rc, '#', '#', '#')
	} else {
		r.drawFrame(rc, '+', '-', '|')
	}

	inner := rc.right - rc.left - 1
	for _, t := range texts {
		runes := []rune(t.node.Text)
		if len(runes) > inner {
			runes = runes[:inner]
		}
		x := r.col(t.x)
		if t.node.Style.Anchor == "end" {
			x = x - len(runes) + 1
		}
		x = max(rc.left+1, min(x, rc.right-len(runes)))
		for i, ch := range runes {
			r.set(x+i, t.row, ch)
		}
	}
}

func (r *raster) lines() []string {
	out := make([]string, len(r.cells))
	for i, row := range r.cells {
		out[i] = strings.TrimRight(string(row), " ")
	}
	return out
}

// Render draws the chart into cols×rows terminal cells. The plot area is
// outlined with dots; selected marks one box, -1 for none.
func (c *Chart) Render(cols, rows int, cellW, cellH float64, selected int) []string {
	r := newRaster(cols, rows, cellW, cellH)

	m := c.area.Margins()
	if c.area.Width() > 0 && c.area.Height() > 0 {
		r.drawFrame(cellRect{
			left:   r.col(m.Left),
			top:    r.row(m.Top),
			right:  r.col(m.Left + c.area.Width() - 1),
			bottom: r.row(m.Top + c.area.Height() - 1),
		}, '.', '.', ':')
	}

	for i, it := range c.items {
		r.drawSurface(it.surface, i == selected)
	}
	return r.lines()
}
