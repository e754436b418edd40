package rotary

// pointerEventKind is the kind of a queued synthetic pointer event.
type pointerEventKind uint8

const (
	pointerDown pointerEventKind = iota
	pointerMove
	pointerUp
	pointerAbort
)

// syntheticPointerEvent represents a single injected pointer event in
// keyboard-local coordinates.
type syntheticPointerEvent struct {
	kind pointerEventKind
	pos  Point
}

// InjectPress queues a pointer down at p. Injected events are consumed one
// per Update call.
func (k *Keyboard) InjectPress(p Point) {
	k.injectQueue = append(k.injectQueue, syntheticPointerEvent{kind: pointerDown, pos: p})
}

// InjectMove queues a pointer move to p. Use this between InjectPress and
// InjectRelease to simulate a drag.
func (k *Keyboard) InjectMove(p Point) {
	k.injectQueue = append(k.injectQueue, syntheticPointerEvent{kind: pointerMove, pos: p})
}

// InjectRelease queues a pointer up at p.
func (k *Keyboard) InjectRelease(p Point) {
	k.injectQueue = append(k.injectQueue, syntheticPointerEvent{kind: pointerUp, pos: p})
}

// InjectAbort queues a gesture cancel.
func (k *Keyboard) InjectAbort() {
	k.injectQueue = append(k.injectQueue, syntheticPointerEvent{kind: pointerAbort})
}

// InjectTap queues a press followed by a release at p. Consumes two frames.
func (k *Keyboard) InjectTap(p Point) {
	k.InjectPress(p)
	k.InjectRelease(p)
}

// InjectDrag queues a full drag sequence: press at from, linearly
// interpolated moves over frames-2 intermediate frames, and release at to.
// The total sequence consumes frames frames. Minimum frames is 2.
func (k *Keyboard) InjectDrag(from, to Point, frames int) {
	if frames < 2 {
		frames = 2
	}
	k.InjectPress(from)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		k.InjectMove(from.Add(to.Sub(from).Mul(t)))
	}
	k.InjectRelease(to)
}

// InjectTrace queues a gesture that presses on the first of indices, moves
// onto each following letter in turn, and releases on the last. Positions
// come from the current layout; it returns false and queues nothing when
// there is no layout or an index is out of range.
func (k *Keyboard) InjectTrace(indices ...int) bool {
	l, ok := k.layout.current()
	if !ok || len(indices) == 0 {
		return false
	}
	for _, i := range indices {
		if i < 0 || i >= len(l.Positions) {
			return false
		}
	}
	k.InjectPress(l.Positions[indices[0]])
	for _, i := range indices[1:] {
		k.InjectMove(l.Positions[i])
	}
	k.InjectRelease(l.Positions[indices[len(indices)-1]])
	return true
}

// PendingInput returns the number of queued synthetic events.
func (k *Keyboard) PendingInput() int {
	return len(k.injectQueue)
}

// Update advances the attached TestRunner and then consumes at most one
// injected event. It returns true when an injected event was consumed, in
// which case the host should skip real input for this frame.
func (k *Keyboard) Update() bool {
	if k.testRunner != nil {
		k.testRunner.step(k)
	}
	return k.processInjectedInput()
}

// processInjectedInput pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (k *Keyboard) processInjectedInput() bool {
	if len(k.injectQueue) == 0 {
		return false
	}
	evt := k.injectQueue[0]
	copy(k.injectQueue, k.injectQueue[1:])
	k.injectQueue = k.injectQueue[:len(k.injectQueue)-1]

	switch evt.kind {
	case pointerDown:
		k.PointerDown(evt.pos)
	case pointerMove:
		k.PointerMove(evt.pos)
	case pointerUp:
		k.PointerUp(evt.pos)
	case pointerAbort:
		k.Abort()
	}
	return true
}
