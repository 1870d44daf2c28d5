package main

import "math"

const (
	rowSpacing       = 20.0
	rowOffset        = 20.0
	textBoxRefWidth  = 150.0
	textBoxRefHeight = 100.0
)

// Row is one key/value line of a TextBox. Both sides may be empty.
type Row struct {
	Key   string
	Value string
}

// TextBox draws key/value rows in a fixed-size panel, keys on the left and
// values on the right.
type TextBox struct {
	placement

	name  string
	data  []Row
	style boxStyle
}

func NewTextBox(name string, data []Row, config *BoxConfig) *TextBox {
	if config == nil {
		config = &BoxConfig{}
	}
	return &TextBox{
		name: name,
		data: data,
		style: boxStyle{
			color:      getString(config.Color, defaultTextColor),
			background: getString(config.Background, "#ffffff"),
			origin: Point{
				X: getFloat64(config.X, 0),
				Y: getFloat64(config.Y, 0),
			},
			size: Size{
				Width:  getFloat64(config.Width, 150),
				Height: getFloat64(config.Height, float64(len(data))*rowSpacing+10),
			},
		},
	}
}

func (b *TextBox) Name() string       { return b.name }
func (b *TextBox) Data() []Row        { return b.data }
func (b *TextBox) XDomain() []float64 { return []float64{} }
func (b *TextBox) YDomain() []float64 { return []float64{} }

// SetData replaces the rows. The panel keeps the size it was built with.
func (b *TextBox) SetData(rows []Row) { b.data = rows }

func (b *TextBox) Draw(area Area, g *Surface, animate bool) {
	if !canDraw(b.name, area, g) {
		return
	}
	g.Animated = animate
	g.Classed("TextBox", true)

	_, size := b.place(area, b.style.origin, b.style.size, clampX|clampY)
	width, height := size.Width, size.Height

	rect, _ := g.Join(KindRect, "background")
	rect.X, rect.Y = 0, 0
	rect.Width, rect.Height = width, height
	rect.Style = Style{Fill: b.style.background, Stroke: "#000000", StrokeWidth: 1}

	scale := math.Min(width/textBoxRefWidth, height/textBoxRefHeight)
	pad := width / 30
	for i, row := range g.JoinIndexed(KindGroup, len(b.data)) {
		row.Classed("legend-item", true)
		row.Translate(0, rowOffset+float64(i)*rowSpacing)

		key, _ := row.Join(KindText, "key")
		key.X, key.Y = pad, 0
		key.Text = b.data[i].Key
		key.Style = Style{Fill: b.style.color, FontScale: ptr(scale), Anchor: "start"}

		value, _ := row.Join(KindText, "value")
		value.X, value.Y = width-pad, 0
		value.Text = b.data[i].Value
		value.Style = Style{Fill: b.style.color, FontScale: ptr(scale), Anchor: "end"}
	}
	b.attach(g)
}
