package main

const (
	labelPadding = 10.0
	labelHeight  = 20.0
)

// LabelBox draws a single line of text on a background panel sized to fit
// the text.
type LabelBox struct {
	placement

	name     string
	data     string
	style    boxStyle
	measurer Measurer
}

func NewLabelBox(name, data string, config *BoxConfig) *LabelBox {
	if config == nil {
		config = &BoxConfig{}
	}
	return &LabelBox{
		name: name,
		data: data,
		style: boxStyle{
			color:      getString(config.Color, defaultTextColor),
			background: getString(config.Background, "transparent"),
			origin: Point{
				X: getFloat64(config.X, defaultLabelX),
				Y: getFloat64(config.Y, defaultLabelY),
			},
		},
		measurer: defaultMeasurer,
	}
}

func (b *LabelBox) Name() string        { return b.name }
func (b *LabelBox) Data() string        { return b.data }
func (b *LabelBox) XDomain() []float64  { return []float64{} }
func (b *LabelBox) YDomain() []float64  { return []float64{} }
func (b *LabelBox) SetData(data string) { b.data = data }

func (b *LabelBox) SetMeasurer(m Measurer) {
	if m != nil {
		b.measurer = m
	}
}

func (b *LabelBox) Draw(area Area, g *Surface, animate bool) {
	if !canDraw(b.name, area, g) {
		return
	}
	g.Animated = animate
	g.Classed("LabelBox", true)

	text, _ := g.Join(KindText, "label")
	text.X, text.Y = 5, -4
	text.Text = b.data
	text.Style = Style{
		Fill:       b.style.color,
		FontFamily: "sans-serif",
		FontWeight: "normal",
		Anchor:     "start",
	}

	size := Size{Width: b.measurer.Measure(b.data, 1) + labelPadding, Height: labelHeight}
	_, size = b.place(area, b.style.origin, size, clampX)

	rect, _ := g.Join(KindRect, "background")
	rect.X, rect.Y = 0, -19
	rect.Width, rect.Height = size.Width, size.Height
	rect.Style = Style{Fill: b.style.background, Stroke: "#000000", StrokeWidth: 1}

	moveToFront(text)
	g.Classed("legend-item", true)
	b.attach(g)
}
