package main

import "math"

type Point struct {
	X, Y float64
}

type Size struct {
	Width, Height float64
}

// Margins are the offsets of the plot origin inside the chart.
type Margins struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
}

// Area is the live drawing region a box is laid out against. Width and
// Height may change between two draws, so boxes must read them every time.
type Area interface {
	Margins() Margins
	Width() float64
	Height() float64
}

// PlotArea is the Area a chart hands to its boxes.
type PlotArea struct {
	margins Margins
	width   float64
	height  float64
}

func NewPlotArea(margins Margins, width, height float64) *PlotArea {
	a := &PlotArea{margins: margins}
	a.Resize(width, height)
	return a
}

func (a *PlotArea) Margins() Margins { return a.margins }
func (a *PlotArea) Width() float64   { return a.width }
func (a *PlotArea) Height() float64  { return a.height }

func (a *PlotArea) Resize(width, height float64) {
	a.width = math.Max(width, 0)
	a.height = math.Max(height, 0)
}

type clampAxes uint8

const (
	clampX clampAxes = 1 << iota
	clampY
)

// clampBox caps size to the area and pulls pos back so that the box ends
// inside the plot. Coordinates never go below zero.
func clampBox(pos Point, size Size, area Area, axes clampAxes) (Point, Size) {
	m := area.Margins()
	if axes&clampX != 0 {
		size.Width = math.Min(size.Width, area.Width())
		if pos.X+size.Width > m.Left+area.Width() {
			pos.X = m.Left + area.Width() - size.Width
		}
		if pos.X < 0 {
			pos.X = 0
		}
	}
	if axes&clampY != 0 {
		size.Height = math.Min(size.Height, area.Height())
		if pos.Y+size.Height > m.Top+area.Height() {
			pos.Y = m.Top + area.Height() - size.Height
		}
		if pos.Y < 0 {
			pos.Y = 0
		}
	}
	return pos, size
}
