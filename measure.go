package main

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Measurer reports the rendered width of a string in pixels at the given
// font scale (1 is the base font size).
type Measurer interface {
	Measure(text string, scale float64) float64
}

type faceMeasurer struct {
	ttf   *truetype.Font
	size  float64
	faces map[float64]font.Face
}

func newFaceMeasurer(size float64) (*faceMeasurer, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	if size <= 0 {
		size = defaultFontSize
	}
	return &faceMeasurer{ttf: ttf, size: size, faces: make(map[float64]font.Face)}, nil
}

func (m *faceMeasurer) face(scale float64) font.Face {
	if scale <= 0 {
		scale = 1
	}
	if f, ok := m.faces[scale]; ok {
		return f
	}
	f := truetype.NewFace(m.ttf, &truetype.Options{
		Size:    m.size * scale,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	m.faces[scale] = f
	return f
}

func (m *faceMeasurer) Measure(text string, scale float64) float64 {
	adv := font.MeasureString(m.face(scale), text)
	return float64(adv) / 64
}

var defaultMeasurer = mustFaceMeasurer(defaultFontSize)

func mustFaceMeasurer(size float64) *faceMeasurer {
	m, err := newFaceMeasurer(size)
	if err != nil {
		panic(err)
	}
	return m
}
