package main

import "math"

type chartItem struct {
	box     Plotable
	surface *Surface
}

// Chart owns the plot area and binds one surface to each box. It is the
// only place where surfaces are created, so a box always gets the same
// surface back on redraw.
type Chart struct {
	width   float64
	height  float64
	area    *PlotArea
	items   []chartItem
	animate bool
}

func NewChart(width, height float64, margins Margins) *Chart {
	c := &Chart{area: NewPlotArea(margins, 0, 0)}
	c.Resize(width, height)
	return c
}

func (c *Chart) Area() *PlotArea { return c.area }
func (c *Chart) Size() Size      { return Size{Width: c.width, Height: c.height} }
func (c *Chart) Len() int        { return len(c.items) }

func (c *Chart) SetAnimate(on bool) { c.animate = on }

// Resize changes the full chart size; the plot area is what is left after
// the margins.
func (c *Chart) Resize(width, height float64) {
	c.width = math.Max(width, 0)
	c.height = math.Max(height, 0)
	m := c.area.Margins()
	c.area.Resize(c.width-m.Left-m.Right, c.height-m.Top-m.Bottom)
}

func (c *Chart) Add(box Plotable) *Surface {
	s := NewSurface()
	c.items = append(c.items, chartItem{box: box, surface: s})
	return s
}

func (c *Chart) Box(i int) Plotable {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i].box
}

func (c *Chart) Surface(i int) *Surface {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return c.items[i].surface
}

// XDomain merges the boxes' x domains. Overlays contribute nothing, but
// the chart still asks, like it would for any plotable.
func (c *Chart) XDomain() []float64 {
	out := []float64{}
	for _, it := range c.items {
		out = append(out, it.box.XDomain()...)
	}
	return out
}

func (c *Chart) YDomain() []float64 {
	out := []float64{}
	for _, it := range c.items {
		out = append(out, it.box.YDomain()...)
	}
	return out
}

func (c *Chart) Draw() {
	for _, it := range c.items {
		it.box.Draw(c.area, it.surface, c.animate)
	}
}

// BoxAt returns the index of the topmost box under p, or -1.
func (c *Chart) BoxAt(p Point) int {
	for i := len(c.items) - 1; i >= 0; i-- {
		if c.items[i].surface.Contains(p) {
			return i
		}
	}
	return -1
}
