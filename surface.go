package main

import (
	"math"
	"strconv"
	"strings"
)

type NodeKind int

const (
	KindGroup NodeKind = iota
	KindRect
	KindText
)

func (k NodeKind) String() string {
	switch k {
	case KindGroup:
		return "g"
	case KindRect:
		return "rect"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type Style struct {
	Fill        string
	Stroke      string
	StrokeWidth float64
	FontFamily  string
	FontWeight  string
	FontScale   *float64 // in em, nil inherits the base size
	Anchor      string   // "start" or "end"
}

// hiddenText reports whether text in this style has no size and paints
// nothing.
func hiddenText(s Style) bool {
	return s.FontScale != nil && *s.FontScale <= 0
}

// Node is one element of the retained render tree. Geometry is local to
// the parent group; groups carry a translation.
type Node struct {
	Kind      NodeKind
	Key       string
	X, Y      float64
	Width     float64
	Height    float64
	Text      string
	Style     Style
	Transform Point

	classes  []string
	children []*Node
	parent   *Node
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }

func (n *Node) Classed(name string, on bool) {
	for i, c := range n.classes {
		if c == name {
			if !on {
				n.classes = append(n.classes[:i], n.classes[i+1:]...)
			}
			return
		}
	}
	if on {
		n.classes = append(n.classes, name)
	}
}

func (n *Node) HasClass(name string) bool {
	for _, c := range n.classes {
		if c == name {
			return true
		}
	}
	return false
}

func (n *Node) Class() string {
	return strings.Join(n.classes, " ")
}

func (n *Node) Translate(x, y float64) {
	n.Transform = Point{X: x, Y: y}
}

// Select returns the child of the given kind and key, or nil.
func (n *Node) Select(kind NodeKind, key string) *Node {
	for _, c := range n.children {
		if c.Kind == kind && c.Key == key {
			return c
		}
	}
	return nil
}

// All returns the direct children of the given kind in paint order.
func (n *Node) All(kind NodeKind) []*Node {
	var out []*Node
	for _, c := range n.children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Join returns the keyed child, appending it first if it does not exist.
// The second result reports whether the node was created.
func (n *Node) Join(kind NodeKind, key string) (*Node, bool) {
	if c := n.Select(kind, key); c != nil {
		return c, false
	}
	return n.Append(kind, key), true
}

func (n *Node) Append(kind NodeKind, key string) *Node {
	c := &Node{Kind: kind, Key: key, parent: n}
	n.children = append(n.children, c)
	return c
}

// JoinIndexed binds count data items by position: children keyed 0..count-1
// are kept or created, any other child of that kind is removed.
func (n *Node) JoinIndexed(kind NodeKind, count int) []*Node {
	out := make([]*Node, count)
	for i := range out {
		out[i], _ = n.Join(kind, strconv.Itoa(i))
	}
	for _, c := range n.All(kind) {
		i, err := strconv.Atoi(c.Key)
		if err != nil || i < 0 || i >= count {
			c.Remove()
		}
	}
	return out
}

func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Walk visits n and its descendants in paint order with the absolute
// offset of each node's coordinate space.
func (n *Node) Walk(fn func(node *Node, offset Point)) {
	n.walk(Point{}, fn)
}

func (n *Node) walk(offset Point, fn func(*Node, Point)) {
	fn(n, offset)
	if n.Kind != KindGroup {
		return
	}
	inner := Point{X: offset.X + n.Transform.X, Y: offset.Y + n.Transform.Y}
	for _, c := range n.children {
		c.walk(inner, fn)
	}
}

// moveToFront re-appends n as the last child of its parent so it paints on
// top of its siblings.
func moveToFront(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	n.Remove()
	n.parent = p
	p.children = append(p.children, n)
}

// Surface is the identity-stable container a host binds to one box. It is
// a projection target only: boxes keep their own state.
type Surface struct {
	*Node
	Animated bool

	drag *Drag
}

func NewSurface() *Surface {
	return &Surface{Node: &Node{Kind: KindGroup}}
}

// Call installs a drag behaviour, replacing any previous one. A gesture in
// progress carries over to the new behaviour.
func (s *Surface) Call(d *Drag) {
	if s.drag != nil && s.drag.active {
		d.active = true
		d.start = s.drag.start
		d.pointer = s.drag.pointer
	}
	s.drag = d
}

func (s *Surface) Drag() *Drag { return s.drag }

// Bounds returns the absolute rectangle covering every rect on the surface.
func (s *Surface) Bounds() (Point, Size, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	s.Walk(func(node *Node, off Point) {
		if node.Kind != KindRect {
			return
		}
		found = true
		minX = math.Min(minX, off.X+node.X)
		minY = math.Min(minY, off.Y+node.Y)
		maxX = math.Max(maxX, off.X+node.X+node.Width)
		maxY = math.Max(maxY, off.Y+node.Y+node.Height)
	})
	if !found {
		return Point{}, Size{}, false
	}
	return Point{X: minX, Y: minY}, Size{Width: maxX - minX, Height: maxY - minY}, true
}

// Contains reports whether p falls inside the surface's bounds.
func (s *Surface) Contains(p Point) bool {
	pos, size, ok := s.Bounds()
	if !ok {
		return false
	}
	return p.X >= pos.X && p.X <= pos.X+size.Width && p.Y >= pos.Y && p.Y <= pos.Y+size.Height
}
