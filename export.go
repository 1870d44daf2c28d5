package main

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black": "#000000",
	"white": "#ffffff",
	"red":   "#ff0000",
	"green": "#008000",
	"blue":  "#0000ff",
	"gray":  "#808080",
	"grey":  "#808080",
}

// parseColor turns a CSS-ish color into an image color. ok is false for
// colors that paint nothing.
func parseColor(s string) (color.Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "none", "transparent":
		return nil, false
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.Black, true
	}
	return c, true
}

// ExportPNG paints the chart with gg. Text uses the same face the label
// widths were measured with.
func (c *Chart) ExportPNG(w io.Writer, measurer *faceMeasurer) error {
	width, height := int(math.Round(c.width)), int(math.Round(c.height))
	if width <= 0 || height <= 0 {
		return fmt.Errorf("nothing to export")
	}
	if measurer == nil {
		measurer = defaultMeasurer
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	m := c.area.Margins()
	dc.SetLineWidth(1.0)
	dc.SetColor(color.RGBA{0xcc, 0xcc, 0xcc, 0xff})
	dc.DrawRectangle(m.Left, m.Top, c.area.Width(), c.area.Height())
	dc.Stroke()

	for _, it := range c.items {
		it.surface.Walk(func(n *Node, off Point) {
			drawNodePNG(dc, n, off, measurer)
		})
	}
	return dc.EncodePNG(w)
}

func drawNodePNG(dc *gg.Context, n *Node, off Point, measurer *faceMeasurer) {
	switch n.Kind {
	case KindRect:
		x, y := off.X+n.X, off.Y+n.Y
		if fill, ok := parseColor(n.Style.Fill); ok {
			dc.SetColor(fill)
			dc.DrawRectangle(x, y, n.Width, n.Height)
			dc.Fill()
		}
		if stroke, ok := parseColor(n.Style.Stroke); ok {
			dc.SetColor(stroke)
			dc.SetLineWidth(n.Style.StrokeWidth)
			dc.DrawRectangle(x, y, n.Width, n.Height)
			dc.Stroke()
		}
	case KindText:
		if hiddenText(n.Style) {
			return
		}
		fill, ok := parseColor(orDefault(n.Style.Fill, defaultTextColor))
		if !ok {
			return
		}
		ax := 0.0
		if n.Style.Anchor == "end" {
			ax = 1
		}
		scale := 1.0
		if n.Style.FontScale != nil {
			scale = *n.Style.FontScale
		}
		dc.SetFontFace(measurer.face(scale))
		dc.SetColor(fill)
		dc.DrawStringAnchored(n.Text, off.X+n.X, off.Y+n.Y, ax, 0)
	}
}

func (c *Chart) ExportTXT(w io.Writer, cellW, cellH float64) error {
	cols := int(c.width / cellW)
	rows := int(c.height / cellH)
	for _, line := range c.Render(cols, rows, cellW, cellH, -1) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Export writes the chart to filename in the given format.
func (c *Chart) Export(filename string, format ExportFormat, config *Config) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating '%s': %w", filename, err)
	}
	defer file.Close()

	if err := c.WriteExport(file, format, config); err != nil {
		return err
	}
	return file.Close()
}

func (c *Chart) WriteExport(w io.Writer, format ExportFormat, config *Config) error {
	if config == nil {
		config = defaultConfig()
	}
	switch format {
	case ExportSVG:
		return c.WriteSVG(w)
	case ExportPNG:
		measurer, err := newFaceMeasurer(config.FontSize)
		if err != nil {
			return err
		}
		return c.ExportPNG(w, measurer)
	case ExportTXT:
		return c.ExportTXT(w, config.CellWidth, config.CellHeight)
	}
	return fmt.Errorf("unsupported export format %d", format)
}

func parseExportFormat(s string) (ExportFormat, error) {
	switch strings.ToLower(s) {
	case "svg":
		return ExportSVG, nil
	case "png":
		return ExportPNG, nil
	case "txt", "text":
		return ExportTXT, nil
	}
	return 0, fmt.Errorf("unsupported export format '%s' (svg, png, txt)", s)
}

func (c *Chart) CopySVG() error {
	return clipboard.WriteAll(c.SVG())
}
