package main

import "testing"

func TestDragFollowsPointerDelta(t *testing.T) {
	pos := Point{X: 10, Y: 20}
	d := NewDrag(func() Point { return pos }, func(p Point) { pos = p })

	d.Move(Point{X: 500, Y: 500})
	if pos != (Point{X: 10, Y: 20}) {
		t.Fatalf("move before start changed position to %+v", pos)
	}

	d.Start(Point{X: 15, Y: 25})
	d.Move(Point{X: 20, Y: 35})
	if pos != (Point{X: 15, Y: 30}) {
		t.Errorf("pos = %+v, want {15 30}", pos)
	}
	d.Move(Point{X: 5, Y: 5})
	if pos != (Point{X: 0, Y: 0}) {
		t.Errorf("pos = %+v, want {0 0}", pos)
	}
	d.End()
	if d.Active() {
		t.Error("drag still active after End")
	}
	d.Move(Point{X: 50, Y: 50})
	if pos != (Point{X: 0, Y: 0}) {
		t.Errorf("move after end changed position to %+v", pos)
	}
}

func TestSurfaceCallKeepsGesture(t *testing.T) {
	pos := Point{X: 10, Y: 10}
	s := NewSurface()
	s.Call(NewDrag(func() Point { return pos }, func(p Point) { pos = p }))
	s.Drag().Start(Point{X: 0, Y: 0})

	s.Call(NewDrag(func() Point { return pos }, func(p Point) { pos = p }))
	if !s.Drag().Active() {
		t.Fatal("replacing the behaviour dropped the active gesture")
	}
	s.Drag().Move(Point{X: 5, Y: 5})
	if pos != (Point{X: 15, Y: 15}) {
		t.Errorf("pos = %+v, want {15 15}", pos)
	}
}
