package main

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo/float"
)

// SVG renders the chart frame and every box surface.
func (c *Chart) SVG() string {
	var buf bytes.Buffer
	w := svgWriter{canvas: svg.New(&buf)}
	w.canvas.Start(w.snap(c.width), w.snap(c.height))

	m := c.area.Margins()
	w.canvas.Rect(w.snap(m.Left), w.snap(m.Top), w.snap(c.area.Width()), w.snap(c.area.Height()),
		`class="plot-area"`, "fill:none;stroke:#cccccc;stroke-width:1px")

	for _, it := range c.items {
		w.node(it.surface.Node, Point{}, it.surface.Animated)
	}
	w.canvas.End()
	return buf.String()
}

func (c *Chart) WriteSVG(w io.Writer) error {
	if _, err := io.WriteString(w, c.SVG()); err != nil {
		return fmt.Errorf("failed to write SVG output: %w", err)
	}
	return nil
}

// svgWriter rounds edges, not lengths: every coordinate is snapped to the
// canvas precision in absolute space and written relative to its parent,
// so a box inside the plot area stays inside after rounding.
type svgWriter struct {
	canvas *svg.SVG
}

func (w svgWriter) snap(v float64) float64 {
	p := math.Pow10(w.canvas.Decimals)
	return math.Round(v*p) / p
}

func (w svgWriter) rel(abs, origin float64) float64 {
	return w.snap(abs) - w.snap(origin)
}

func (w svgWriter) node(n *Node, origin Point, animated bool) {
	switch n.Kind {
	case KindGroup:
		inner := Point{X: origin.X + n.Transform.X, Y: origin.Y + n.Transform.Y}
		d := w.canvas.Decimals
		attrs := []string{fmt.Sprintf(`transform="translate(%.*f,%.*f)"`,
			d, w.rel(inner.X, origin.X), d, w.rel(inner.Y, origin.Y))}
		if class := n.Class(); class != "" {
			attrs = append(attrs, fmt.Sprintf(`class="%s"`, class))
		}
		if animated {
			attrs = append(attrs, "transition:transform 0.25s ease-out")
		}
		w.canvas.Group(attrs...)
		for _, child := range n.Children() {
			w.node(child, inner, false)
		}
		w.canvas.Gend()
	case KindRect:
		x, y := origin.X+n.X, origin.Y+n.Y
		w.canvas.Rect(w.rel(x, origin.X), w.rel(y, origin.Y),
			w.rel(x+n.Width, x), w.rel(y+n.Height, y), rectStyle(n.Style))
	case KindText:
		w.canvas.Text(w.rel(origin.X+n.X, origin.X), w.rel(origin.Y+n.Y, origin.Y), n.Text, textStyle(n.Style))
	}
}

func rectStyle(s Style) string {
	parts := []string{"fill:" + orDefault(s.Fill, "none")}
	if s.Stroke != "" {
		parts = append(parts, "stroke:"+s.Stroke, fmt.Sprintf("stroke-width:%gpx", s.StrokeWidth))
	}
	return strings.Join(parts, ";")
}

func textStyle(s Style) string {
	var parts []string
	if s.Fill != "" {
		parts = append(parts, "fill:"+s.Fill)
	}
	if s.FontFamily != "" {
		parts = append(parts, "font-family:"+s.FontFamily)
	}
	if s.FontWeight != "" {
		parts = append(parts, "font-weight:"+s.FontWeight)
	}
	if s.FontScale != nil {
		parts = append(parts, fmt.Sprintf("font-size:%gem", math.Max(*s.FontScale, 0)))
	}
	if s.Anchor != "" {
		parts = append(parts, "text-anchor:"+s.Anchor)
	}
	return strings.Join(parts, ";")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
