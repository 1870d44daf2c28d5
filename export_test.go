package main

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

func exportChart() *Chart {
	c := NewChart(400, 300, Margins{Left: 40, Top: 10, Right: 10, Bottom: 30})
	c.Add(NewTextBox("stats", []Row{{"Mean", "0.456"}, {"RMS", "1.0"}},
		&BoxConfig{X: ptr(20.0), Y: ptr(20.0), Width: ptr(150.0), Height: ptr(50.0), Background: ptr("#eeeeee")}))
	c.Add(NewLabelBox("title", "a<b", &BoxConfig{X: ptr(200.0)}))
	c.Draw()
	return c
}

func TestSVG(t *testing.T) {
	out := exportChart().SVG()

	for _, want := range []string{
		"<svg",
		"</svg>",
		`class="plot-area"`,
		`class="TextBox"`,
		`class="LabelBox legend-item"`,
		`transform="translate(60.00,30.00)"`,
		`transform="translate(0.00,20.00)"`,
		`transform="translate(0.00,40.00)"`,
		"text-anchor:end",
		"font-size:0.5em",
		"a&lt;b",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "<text"); n != 5 {
		t.Errorf("got %d text elements, want 5", n)
	}
	if strings.Contains(out, "transition") {
		t.Error("static chart has transitions")
	}
}

func TestSVGAnimated(t *testing.T) {
	c := exportChart()
	c.SetAnimate(true)
	c.Draw()
	if out := c.SVG(); !strings.Contains(out, "transition:transform 0.25s ease-out") {
		t.Errorf("animated SVG has no transition:\n%s", out)
	}
}

var labelEdgeRE = regexp.MustCompile(`translate\(([-0-9.]+),[-0-9.]+\)" class="LabelBox[^>]*>\s*<rect x="([-0-9.]+)" y="[-0-9.]+" width="([-0-9.]+)"`)

func TestSVGKeepsClampedEdgeInside(t *testing.T) {
	for _, advance := range []float64{7.6, 7.333, 5.005} {
		c := NewChart(540, 300, Margins{Left: 40})
		b := NewLabelBox("l", "abc", nil)
		b.SetMeasurer(fixedMeasurer(advance))
		c.Add(b)
		c.Draw()

		d := c.Surface(0).Drag()
		d.Start(Point{})
		d.Move(Point{X: 1000})
		d.End()
		c.Draw()

		out := c.SVG()
		m := labelEdgeRE.FindStringSubmatch(out)
		if m == nil {
			t.Fatalf("label group not found:\n%s", out)
		}
		var sum float64
		for _, v := range m[1:] {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				t.Fatal(err)
			}
			sum += f
		}
		if sum > 540+1e-9 {
			t.Errorf("advance %v: rendered right edge %v past 540:\n%s", advance, sum, m[0])
		}
	}
}

func TestZeroScaleTextIsHidden(t *testing.T) {
	c := NewChart(200, 200, Margins{Left: 100, Top: 100, Right: 100, Bottom: 100})
	c.Add(NewTextBox("stats", []Row{{"Mean", "0.456"}, {"RMS", "1.0"}}, nil))
	c.Draw()

	if n := strings.Count(c.SVG(), "font-size:0em"); n != 4 {
		t.Errorf("got %d zero-size texts in SVG, want 4", n)
	}

	var buf bytes.Buffer
	if err := c.ExportPNG(&buf, nil); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	white := color.RGBAModel.Convert(color.White)
	for y := 104; y <= 146; y++ {
		for x := 55; x <= 170; x++ {
			if got := color.RGBAModel.Convert(img.At(x, y)); got != white {
				t.Fatalf("pixel (%d,%d) = %v, zero-size text was painted", x, y, got)
			}
		}
	}

	for _, line := range c.Render(25, 12, 8, 16, -1) {
		if strings.Contains(line, "Mean") || strings.Contains(line, "RMS") {
			t.Errorf("zero-size text rendered: %q", line)
		}
	}
}

func TestExportPNG(t *testing.T) {
	c := exportChart()
	var buf bytes.Buffer
	if err := c.ExportPNG(&buf, nil); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("image is %dx%d", b.Dx(), b.Dy())
	}

	white := color.RGBAModel.Convert(color.White)
	if got := color.RGBAModel.Convert(img.At(5, 5)); got != white {
		t.Errorf("margin pixel = %v, want white", got)
	}
	pos, _ := c.Box(0).Position()
	r, g, b, _ := img.At(int(pos.X)+147, int(pos.Y)+47).RGBA()
	if r>>8 != 0xee || g>>8 != 0xee || b>>8 != 0xee {
		t.Errorf("panel pixel = %x %x %x, want eeeeee", r>>8, g>>8, b>>8)
	}
}

func TestExportPNGEmptyChart(t *testing.T) {
	c := NewChart(0, 0, Margins{})
	if err := c.ExportPNG(&bytes.Buffer{}, nil); err == nil {
		t.Error("expected an error for an empty chart")
	}
}

func TestExportTXT(t *testing.T) {
	c := exportChart()
	var buf bytes.Buffer
	if err := c.ExportTXT(&buf, 8, 16); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 300/16 {
		t.Errorf("got %d lines, want %d", len(lines), 300/16)
	}
	for _, want := range []string{"Mean", "0.456", "RMS", "1.0"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("text export lost %q:\n%s", want, buf.String())
		}
	}
}

func TestExportToFile(t *testing.T) {
	c := exportChart()
	dir := t.TempDir()
	for _, f := range []ExportFormat{ExportSVG, ExportPNG, ExportTXT} {
		path := filepath.Join(dir, "chart"+f.Ext())
		if err := c.Export(path, f, nil); err != nil {
			t.Fatalf("%s: %v", f.Ext(), err)
		}
		info, err := os.Stat(path)
		if err != nil || info.Size() == 0 {
			t.Errorf("%s: file not written (%v)", path, err)
		}
	}
	if err := c.Export(filepath.Join(dir, "missing", "x.svg"), ExportSVG, nil); err == nil {
		t.Error("export into a missing directory succeeded")
	}
}

func TestParseExportFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    ExportFormat
		wantExt string
		wantErr bool
	}{
		{in: "svg", want: ExportSVG, wantExt: ".svg"},
		{in: "PNG", want: ExportPNG, wantExt: ".png"},
		{in: "txt", want: ExportTXT, wantExt: ".txt"},
		{in: "text", want: ExportTXT, wantExt: ".txt"},
		{in: "pdf", wantErr: true},
	}
	for _, tc := range tests {
		got, err := parseExportFormat(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("%q: expected an error", tc.in)
			}
			continue
		}
		if err != nil || got != tc.want || got.Ext() != tc.wantExt {
			t.Errorf("%q: got %v %q %v", tc.in, got, got.Ext(), err)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in     string
		wantOK bool
		want   color.RGBA
	}{
		{in: "transparent"},
		{in: "none"},
		{in: ""},
		{in: "#ffffff", wantOK: true, want: color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{in: "Black", wantOK: true, want: color.RGBA{0, 0, 0, 0xff}},
		{in: "red", wantOK: true, want: color.RGBA{0xff, 0, 0, 0xff}},
		{in: "not-a-color", wantOK: true, want: color.RGBA{0, 0, 0, 0xff}},
	}
	for _, tc := range tests {
		c, ok := parseColor(tc.in)
		if ok != tc.wantOK {
			t.Errorf("%q: ok = %v", tc.in, ok)
			continue
		}
		if !ok {
			continue
		}
		if got := color.RGBAModel.Convert(c).(color.RGBA); got != tc.want {
			t.Errorf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}
