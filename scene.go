package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene is the on-disk description of a chart and its overlays.
type Scene struct {
	Width   float64   `yaml:"width"`
	Height  float64   `yaml:"height"`
	Margins Margins   `yaml:"margins"`
	Boxes   []BoxSpec `yaml:"boxes"`
}

type BoxSpec struct {
	Kind      string  `yaml:"kind"` // "label" or "text"
	Name      string  `yaml:"name"`
	Text      string  `yaml:"text,omitempty"`
	Rows      [][]any `yaml:"rows,omitempty"`
	BoxConfig `yaml:",inline"`
}

func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene '%s': %w", path, err)
	}
	scene, err := ParseScene(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scene '%s': %w", path, err)
	}
	return scene, nil
}

func ParseScene(data []byte) (*Scene, error) {
	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, err
	}
	if scene.Width <= 0 {
		scene.Width = 640
	}
	if scene.Height <= 0 {
		scene.Height = 400
	}
	return &scene, nil
}

func defaultScene() *Scene {
	return &Scene{
		Width:   640,
		Height:  400,
		Margins: Margins{Left: 40, Top: 10, Right: 10, Bottom: 30},
		Boxes: []BoxSpec{
			{Kind: "label", Name: "title", Text: "Entries: 42"},
			{Kind: "text", Name: "stats", Rows: [][]any{
				{"Entries", 42},
				{"Mean", "0.456"},
				{"RMS", "1.0"},
			}, BoxConfig: BoxConfig{X: ptr(440.0), Y: ptr(10.0)}},
		},
	}
}

// stringifyRows converts scene rows to key/value pairs. Scalars are
// formatted with %v; a row must have exactly a key and a value.
func stringifyRows(name string, rows [][]any) ([]Row, error) {
	out := make([]Row, 0, len(rows))
	for i, r := range rows {
		if len(r) != 2 {
			return nil, fmt.Errorf("box %q row %d: want [key, value], got %d items", name, i, len(r))
		}
		out = append(out, Row{Key: stringify(r[0]), Value: stringify(r[1])})
	}
	return out, nil
}

func stringify(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Build creates the chart described by the scene. Label boxes without an
// explicit position take the defaults from config.
func (s *Scene) Build(config *Config) (*Chart, error) {
	if config == nil {
		config = defaultConfig()
	}
	measurer, err := newFaceMeasurer(config.FontSize)
	if err != nil {
		return nil, err
	}

	chart := NewChart(s.Width, s.Height, s.Margins)
	chart.SetAnimate(config.Animate)
	for i, spec := range s.Boxes {
		name := spec.Name
		if name == "" {
			name = fmt.Sprintf("box%d", i)
		}
		cfg := spec.BoxConfig
		switch spec.Kind {
		case "label":
			if cfg.X == nil && config.LabelX != nil {
				cfg.X = ptr(*config.LabelX)
			}
			if cfg.Y == nil && config.LabelY != nil {
				cfg.Y = ptr(*config.LabelY)
			}
			box := NewLabelBox(name, spec.Text, &cfg)
			box.SetMeasurer(measurer)
			chart.Add(box)
		case "text":
			rows, err := stringifyRows(name, spec.Rows)
			if err != nil {
				return nil, err
			}
			chart.Add(NewTextBox(name, rows, &cfg))
		default:
			return nil, fmt.Errorf("box %q: unknown kind %q", name, spec.Kind)
		}
	}
	return chart, nil
}

func ptr[T any](v T) *T { return &v }
