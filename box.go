package main

import "log"

// Plotable is what a chart needs from an overlay. Boxes never take part in
// the chart's data domain, so XDomain and YDomain are always empty.
type Plotable interface {
	Name() string
	XDomain() []float64
	YDomain() []float64
	Draw(area Area, g *Surface, animate bool)
	Position() (Point, bool)
	MoveTo(p Point)
}

// BoxConfig holds the optional settings of a box. Nil fields take the
// variant's default.
type BoxConfig struct {
	Color      *string  `yaml:"color,omitempty"`
	X          *float64 `yaml:"x,omitempty"`
	Y          *float64 `yaml:"y,omitempty"`
	Background *string  `yaml:"background,omitempty"`
	Width      *float64 `yaml:"width,omitempty"`
	Height     *float64 `yaml:"height,omitempty"`
}

type boxStyle struct {
	color      string
	background string
	origin     Point
	size       Size
}

func getString(ptr *string, def string) string {
	if ptr != nil {
		return *ptr
	}
	return def
}

func getFloat64(ptr *float64, def float64) float64 {
	if ptr != nil {
		return *ptr
	}
	return def
}

// placement is the bound position shared by both box variants. It is
// seeded on the first draw and then only changed by clamping or dragging.
type placement struct {
	pos   Point
	bound bool
}

func (p *placement) Position() (Point, bool) {
	return p.pos, p.bound
}

func (p *placement) MoveTo(pt Point) {
	p.pos = pt
	p.bound = true
}

// place resolves the position for this draw. The seed is offset by the
// area margins once; later draws clamp the current position instead.
func (p *placement) place(area Area, seed Point, size Size, axes clampAxes) (Point, Size) {
	if !p.bound {
		m := area.Margins()
		p.pos = Point{X: seed.X + m.Left, Y: seed.Y + m.Top}
		p.bound = true
	}
	p.pos, size = clampBox(p.pos, size, area, axes)
	return p.pos, size
}

// attach moves g to the bound position and wires dragging. Drag updates
// are not clamped; the next draw does that.
func (p *placement) attach(g *Surface) {
	g.Translate(p.pos.X, p.pos.Y)
	g.Call(NewDrag(
		func() Point { return p.pos },
		func(to Point) {
			p.pos = to
			g.Translate(to.X, to.Y)
		},
	))
}

func canDraw(name string, area Area, g *Surface) bool {
	if pa, ok := area.(*PlotArea); area == nil || (ok && pa == nil) || g == nil {
		log.Printf("Cannot draw %s, no arguments given", name)
		return false
	}
	return true
}
