package rotary

// Layout is a computed snapshot of where every letter sits. It is replaced
// wholesale on every recompute and must be treated as read-only.
type Layout struct {
	Circle    Circle
	Letters   []string
	Positions []Point // Positions[i] is the centre of Letters[i]
	Distance  float64 // distance of every letter from Circle.Center
}

// Len returns the number of letters in the layout.
func (l Layout) Len() int {
	return len(l.Positions)
}

// CircleFor returns the circle inscribed in the shorter side of size,
// centred in the bounding box.
func CircleFor(size Size) Circle {
	r := size.Width
	if size.Height < r {
		r = size.Height
	}
	return Circle{
		Center: Point{X: size.Width / 2, Y: size.Height / 2},
		Radius: r / 2,
	}
}

// ComputeLayout places letters evenly around the circle inscribed in size, at
// ratio × radius from the centre. It returns false when there is nothing to
// lay out: no letters, or a bounding box that is not known yet.
func ComputeLayout(letters []string, size Size, ratio float64) (Layout, bool) {
	if len(letters) == 0 || !size.Valid() {
		return Layout{}, false
	}

	circle := CircleFor(size)
	dist := circle.Radius * ratio
	n := len(letters)

	l := Layout{
		Circle:    circle,
		Letters:   letters,
		Positions: make([]Point, n),
		Distance:  dist,
	}
	for i := 0; i < n; i++ {
		l.Positions[i] = PlaceOnCircle(circle.Center, dist, n, i)
	}
	return l, true
}

// layoutEngine owns the inputs to ComputeLayout and the latest result.
type layoutEngine struct {
	letters []string
	size    Size
	ratio   float64

	layout Layout
	valid  bool
}

func (e *layoutEngine) setLetters(letters []string) {
	if len(letters) == 0 {
		e.letters = nil
	} else {
		e.letters = append([]string(nil), letters...)
	}
	e.recompute()
}

func (e *layoutEngine) resize(size Size) {
	e.size = size
	e.recompute()
}

func (e *layoutEngine) setRatio(ratio float64) {
	e.ratio = ratio
	e.recompute()
}

func (e *layoutEngine) recompute() {
	e.layout, e.valid = ComputeLayout(e.letters, e.size, e.ratio)
}

// current returns the latest layout. The Positions slice is shared; callers
// outside the package receive a copy via Keyboard.Layout.
func (e *layoutEngine) current() (Layout, bool) {
	return e.layout, e.valid
}
