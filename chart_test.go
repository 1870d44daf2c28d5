package main

import "testing"

func TestChartResize(t *testing.T) {
	c := NewChart(640, 400, Margins{Left: 40, Top: 10, Right: 10, Bottom: 30})
	if a := c.Area(); a.Width() != 590 || a.Height() != 360 {
		t.Fatalf("area = %vx%v, want 590x360", a.Width(), a.Height())
	}
	c.Resize(30, 20)
	if a := c.Area(); a.Width() != 0 || a.Height() != 0 {
		t.Errorf("area = %vx%v, want 0x0", a.Width(), a.Height())
	}
	if c.Size() != (Size{Width: 30, Height: 20}) {
		t.Errorf("size = %+v", c.Size())
	}
}

func TestChartResizeReclampsBoxes(t *testing.T) {
	c := NewChart(640, 400, Margins{Left: 40, Top: 10, Right: 10, Bottom: 30})
	tb := NewTextBox("stats", []Row{{"k", "v"}}, &BoxConfig{X: ptr(440.0), Y: ptr(300.0)})
	c.Add(tb)
	c.Draw()
	if pos, _ := tb.Position(); pos != (Point{X: 480, Y: 310}) {
		t.Fatalf("pos = %+v, want {480 310}", pos)
	}

	c.Resize(400, 300)
	c.Draw()
	pos, _ := tb.Position()
	if want := (Point{X: 240, Y: 240}); pos != want {
		t.Errorf("pos after resize = %+v, want %+v", pos, want)
	}
	if s := c.Surface(0); s.Transform != pos {
		t.Errorf("transform = %+v, want %+v", s.Transform, pos)
	}
}

func TestChartBoxAt(t *testing.T) {
	c := NewChart(400, 300, Margins{})
	under := NewTextBox("under", []Row{{"a", "1"}}, &BoxConfig{X: ptr(10.0), Y: ptr(10.0)})
	over := NewTextBox("over", []Row{{"b", "2"}}, &BoxConfig{X: ptr(100.0), Y: ptr(20.0)})
	c.Add(under)
	c.Add(over)

	if got := c.BoxAt(Point{X: 20, Y: 20}); got != -1 {
		t.Errorf("BoxAt before draw = %d, want -1", got)
	}
	c.Draw()

	tests := []struct {
		p    Point
		want int
	}{
		{Point{X: 20, Y: 20}, 0},
		{Point{X: 120, Y: 30}, 1},
		{Point{X: 200, Y: 45}, 1},
		{Point{X: 350, Y: 200}, -1},
	}
	for _, tc := range tests {
		if got := c.BoxAt(tc.p); got != tc.want {
			t.Errorf("BoxAt(%+v) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestChartAccessors(t *testing.T) {
	c := NewChart(400, 300, Margins{})
	c.Add(NewTextBox("a", nil, nil))
	if c.Len() != 1 {
		t.Errorf("Len = %d", c.Len())
	}
	if c.Box(1) != nil || c.Box(-1) != nil || c.Surface(3) != nil {
		t.Error("out of range index returned a value")
	}
	if c.Box(0).Name() != "a" {
		t.Errorf("Box(0) = %q", c.Box(0).Name())
	}
	if len(c.XDomain()) != 0 || len(c.YDomain()) != 0 {
		t.Error("overlays contributed to the data domain")
	}

	c.SetAnimate(true)
	c.Draw()
	if !c.Surface(0).Animated {
		t.Error("animate flag not passed to the box")
	}
}
