package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func childKeys(n *Node) []string {
	var keys []string
	for _, c := range n.Children() {
		keys = append(keys, c.Kind.String()+":"+c.Key)
	}
	return keys
}

func TestJoinReusesNodes(t *testing.T) {
	s := NewSurface()
	a, created := s.Join(KindRect, "background")
	if !created {
		t.Fatal("first join did not create the node")
	}
	b, created := s.Join(KindRect, "background")
	if created || a != b {
		t.Fatal("second join created a new node")
	}
	if n := len(s.All(KindRect)); n != 1 {
		t.Errorf("got %d rects, want 1", n)
	}
}

func TestJoinIndexed(t *testing.T) {
	s := NewSurface()
	s.Join(KindRect, "background")
	first := s.JoinIndexed(KindGroup, 3)
	if len(s.All(KindGroup)) != 3 {
		t.Fatalf("got %d groups, want 3", len(s.All(KindGroup)))
	}

	second := s.JoinIndexed(KindGroup, 1)
	if second[0] != first[0] {
		t.Error("group 0 was recreated")
	}
	want := []string{"rect:background", "g:0"}
	if diff := cmp.Diff(want, childKeys(s.Node)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if first[2].Parent() != nil {
		t.Error("removed group still has a parent")
	}

	s.JoinIndexed(KindGroup, 2)
	want = []string{"rect:background", "g:0", "g:1"}
	if diff := cmp.Diff(want, childKeys(s.Node)); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
}

func TestMoveToFront(t *testing.T) {
	s := NewSurface()
	text, _ := s.Join(KindText, "label")
	s.Join(KindRect, "background")
	moveToFront(text)

	want := []string{"rect:background", "text:label"}
	if diff := cmp.Diff(want, childKeys(s.Node)); diff != "" {
		t.Errorf("paint order mismatch (-want +got):\n%s", diff)
	}
	if text.Parent() != s.Node {
		t.Error("moveToFront lost the parent")
	}

	moveToFront(text)
	if diff := cmp.Diff(want, childKeys(s.Node)); diff != "" {
		t.Errorf("second moveToFront changed order (-want +got):\n%s", diff)
	}
}

func TestClassed(t *testing.T) {
	n := &Node{Kind: KindGroup}
	n.Classed("TextBox", true)
	n.Classed("TextBox", true)
	n.Classed("legend-item", true)
	if got := n.Class(); got != "TextBox legend-item" {
		t.Errorf("Class() = %q", got)
	}
	n.Classed("TextBox", false)
	if n.HasClass("TextBox") || !n.HasClass("legend-item") {
		t.Errorf("Class() = %q after removal", n.Class())
	}
}

func TestSurfaceBounds(t *testing.T) {
	s := NewSurface()
	if _, _, ok := s.Bounds(); ok {
		t.Fatal("empty surface reported bounds")
	}
	s.Translate(100, 50)
	r, _ := s.Join(KindRect, "background")
	r.X, r.Y, r.Width, r.Height = 0, -19, 80, 20

	pos, size, ok := s.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	if pos != (Point{X: 100, Y: 31}) || size != (Size{Width: 80, Height: 20}) {
		t.Errorf("bounds = %+v %+v", pos, size)
	}
	if !s.Contains(Point{X: 150, Y: 40}) {
		t.Error("point inside not contained")
	}
	if s.Contains(Point{X: 150, Y: 60}) {
		t.Error("point below contained")
	}
}
