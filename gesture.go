package rotary

import "strings"

// GestureState is a snapshot of the gesture state machine for renderers.
type GestureState struct {
	Status   GestureStatus
	Dragging bool
	// Selected lists visited letter indices in visiting order. It is never
	// empty while Dragging.
	Selected []int
	// Root is where the gesture began.
	Root Point
	// Pointer is the last pointer position seen while dragging; the live
	// trail segment runs from the last selected letter to here.
	Pointer Point
	// Hover is the last pointer position seen while idle. It is not used by
	// the gesture.
	Hover Point
}

// gestureState is the authoritative, mutable form of GestureState.
type gestureState struct {
	dragging bool
	selected []int
	root     Point
	pointer  Point
	hover    Point
}

func (g *gestureState) reset() {
	g.dragging = false
	g.selected = g.selected[:0]
}

// WordOf concatenates letters[i] for every i in indices, in order, with no
// separator. Indices outside letters are skipped.
func WordOf(letters []string, indices []int) string {
	var b strings.Builder
	for _, i := range indices {
		if i >= 0 && i < len(letters) {
			b.WriteString(letters[i])
		}
	}
	return b.String()
}

// State returns a snapshot of the gesture state. Selected is a copy.
func (k *Keyboard) State() GestureState {
	st := GestureState{
		Status:   StateIdle,
		Dragging: k.state.dragging,
		Root:     k.state.root,
		Pointer:  k.state.pointer,
		Hover:    k.state.hover,
	}
	if k.state.dragging {
		st.Status = StateDragging
		st.Selected = append([]int(nil), k.state.selected...)
	}
	return st
}

// Dragging reports whether a gesture is in progress.
func (k *Keyboard) Dragging() bool {
	return k.state.dragging
}

// Word returns the word built by the gesture in progress, or "" when idle.
func (k *Keyboard) Word() string {
	if !k.state.dragging {
		return ""
	}
	return WordOf(k.layout.letters, k.state.selected)
}

// PointerDown starts a gesture if p hits a letter. It reports whether the
// keyboard claimed the event; a miss leaves the keyboard idle and the host
// may route the touch elsewhere. A second down while dragging is ignored.
func (k *Keyboard) PointerDown(p Point) bool {
	if k.state.dragging {
		return true
	}

	hit := k.HitTest(p)
	if !hit.Hit() {
		k.state.hover = p
		k.diagnose(Diagnostic{Kind: DiagGestureMissed, Index: -1, Reason: hit.Status.String()})
		return false
	}

	k.state.dragging = true
	k.state.selected = append(k.state.selected[:0], hit.Index)
	k.state.root = p
	k.state.pointer = p

	k.diagnose(Diagnostic{Kind: DiagGestureStarted, Index: hit.Index})
	k.fireWordEvent(WordGestureStarted, k.Word())
	return true
}

// PointerMove extends the selection while dragging. Every hit is appended,
// subject to the repeat policy, the trailing pointer position is updated,
// and a partial word is reported. While idle only the hover position is
// recorded and the event is not claimed.
func (k *Keyboard) PointerMove(p Point) bool {
	if !k.state.dragging {
		k.state.hover = p
		return false
	}

	k.state.pointer = p
	if hit := k.HitTest(p); hit.Hit() {
		k.selectLetter(hit.Index)
		// A subscriber may have ended the gesture.
		if !k.state.dragging {
			return true
		}
	}

	k.emitPartial(k.Word())
	return true
}

// selectLetter appends i to the selection unless the repeat policy drops it.
func (k *Keyboard) selectLetter(i int) {
	sel := k.state.selected
	if k.policy == RepeatCollapse && len(sel) > 0 && sel[len(sel)-1] == i {
		k.diagnose(Diagnostic{Kind: DiagRepeatSkipped, Index: i})
		return
	}
	k.state.selected = append(sel, i)
	k.diagnose(Diagnostic{Kind: DiagLetterSelected, Index: i})
	k.fireWordEvent(WordLetterSelected, k.Word())
}

// PointerUp ends the gesture, reporting the final word exactly once. State is
// back to idle before the word is delivered, so listeners may start another
// gesture. Pointer up while idle is a no-op. It always claims the event.
func (k *Keyboard) PointerUp(p Point) bool {
	if !k.state.dragging {
		k.state.hover = p
		return true
	}

	k.state.pointer = p
	indices := append([]int(nil), k.state.selected...)
	word := WordOf(k.layout.letters, indices)
	k.state.reset()

	k.diagnose(Diagnostic{Kind: DiagGestureEnded, Index: indices[len(indices)-1], Word: word})
	k.emitEntered(word, indices, p)
	return true
}

// Abort cancels the gesture in progress without reporting a final word. It
// reports whether there was a gesture to cancel.
func (k *Keyboard) Abort() bool {
	if !k.state.dragging {
		return false
	}
	k.abort("aborted by host")
	return true
}

func (k *Keyboard) abort(reason string) {
	word := k.Word()
	k.fireWordEvent(WordGestureAborted, word)
	k.state.reset()
	k.diagnose(Diagnostic{Kind: DiagGestureAborted, Index: -1, Word: word, Reason: reason})
}
