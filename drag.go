package main

// Drag tracks one pointer gesture at a time. The subject follows the
// pointer by the distance travelled since the gesture started, so grabbing
// a box off-centre does not make it jump.
type Drag struct {
	origin func() Point
	onDrag func(Point)

	active  bool
	start   Point
	pointer Point
}

func NewDrag(origin func() Point, onDrag func(Point)) *Drag {
	return &Drag{origin: origin, onDrag: onDrag}
}

func (d *Drag) Active() bool { return d.active }

func (d *Drag) Start(pointer Point) {
	d.active = true
	d.start = d.origin()
	d.pointer = pointer
}

func (d *Drag) Move(pointer Point) {
	if !d.active {
		return
	}
	to := Point{
		X: d.start.X + pointer.X - d.pointer.X,
		Y: d.start.Y + pointer.Y - d.pointer.Y,
	}
	d.onDrag(to)
}

func (d *Drag) End() {
	d.active = false
}
