package host

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/rotary"
)

// Input forwards one pointer, the left mouse button or the first touch, to a
// keyboard. Positions are converted from screen to keyboard-local
// coordinates by subtracting Offset.
type Input struct {
	// Offset is the screen position of the keyboard's origin.
	Offset rotary.Point

	kb      *rotary.Keyboard
	down    bool
	claimed bool
	last    rotary.Point

	touching bool
	touch    ebiten.TouchID
	touchIDs []ebiten.TouchID
}

// NewInput returns an Input driving kb.
func NewInput(kb *rotary.Keyboard) *Input {
	return &Input{kb: kb}
}

// Claimed reports whether the pointer currently held down started a gesture.
func (in *Input) Claimed() bool {
	return in.claimed
}

// Poll reads Ebitengine's input state and forwards any change. Call it once
// per Update. A touch takes over only while the mouse is up; the mouse is
// ignored while a touch is tracked.
func (in *Input) Poll() {
	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])

	if in.touching {
		if !slices.Contains(in.touchIDs, in.touch) {
			in.touching = false
			in.step(false, in.last.Add(in.Offset))
			return
		}
		x, y := ebiten.TouchPosition(in.touch)
		in.step(true, rotary.Pt(float64(x), float64(y)))
		return
	}

	if !in.down && len(in.touchIDs) > 0 {
		in.touching = true
		in.touch = in.touchIDs[0]
		x, y := ebiten.TouchPosition(in.touch)
		in.step(true, rotary.Pt(float64(x), float64(y)))
		return
	}

	x, y := ebiten.CursorPosition()
	in.step(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), rotary.Pt(float64(x), float64(y)))
}

// step runs the press/drag/release transitions for one sample. Moves are
// only forwarded when the position changed since the last sample.
func (in *Input) step(pressed bool, screen rotary.Point) {
	p := screen.Sub(in.Offset)

	switch {
	case pressed && !in.down:
		in.down = true
		in.last = p
		in.claimed = in.kb.PointerDown(p)
	case pressed && in.down:
		if p != in.last {
			in.last = p
			in.kb.PointerMove(p)
		}
	case !pressed && in.down:
		in.down = false
		in.claimed = false
		in.last = p
		in.kb.PointerUp(p)
	default:
		if p != in.last {
			in.last = p
			in.kb.PointerMove(p)
		}
	}
}
