package rotary

// Point is a 2D coordinate in the host's pixel space. The origin is at the
// top-left with Y increasing downward.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return Distance(p, q)
}

// Size is the bounding box the keyboard is laid out in.
type Size struct {
	Width, Height float64
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Circle is the keyboard's backing circle, derived from a Size.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside or on the circle.
func (c Circle) Contains(p Point) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// GestureStatus is the state of the gesture state machine.
type GestureStatus uint8

const (
	StateIdle     GestureStatus = iota // no pointer down
	StateDragging                      // pointer down, started on a letter
)

// String returns "idle" or "dragging".
func (s GestureStatus) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}

// RepeatPolicy decides what happens when a move lands on the letter that was
// selected last.
type RepeatPolicy uint8

const (
	RepeatAppend   RepeatPolicy = iota // append every hit, including immediate repeats
	RepeatCollapse                     // skip a hit equal to the last selected index
)

// String returns the config spelling of the policy.
func (p RepeatPolicy) String() string {
	switch p {
	case RepeatAppend:
		return "append"
	case RepeatCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// WordEventKind identifies a kind of word event.
type WordEventKind uint8

const (
	WordGestureStarted WordEventKind = iota // pointer down landed on a letter
	WordLetterSelected                      // a letter index was appended to the selection
	WordPartial                             // partial word after a move while dragging
	WordEntered                             // final word on pointer up
	WordGestureAborted                      // gesture cancelled without a final word
)

// String returns a short name for the event kind.
func (k WordEventKind) String() string {
	switch k {
	case WordGestureStarted:
		return "gesture-started"
	case WordLetterSelected:
		return "letter-selected"
	case WordPartial:
		return "partial"
	case WordEntered:
		return "entered"
	case WordGestureAborted:
		return "gesture-aborted"
	default:
		return "unknown"
	}
}

// WordEvent is delivered to OnWordEvent subscribers. Indices is a copy of the
// selection at the time of the event and may be retained.
type WordEvent struct {
	Kind    WordEventKind
	Word    string
	Index   int // last selected index; -1 when none
	Indices []int
	Pointer Point
}
