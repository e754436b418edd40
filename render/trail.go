package render

import "github.com/phanxgames/rotary"

// Segment is one straight piece of the selection trail.
type Segment struct {
	From, To rotary.Point
}

// TrailSegments returns the lines joining consecutive selected letters,
// followed by the live segment from the last selected letter to the pointer.
// It returns nil when no gesture is in progress.
func TrailSegments(layout rotary.Layout, st rotary.GestureState) []Segment {
	if !st.Dragging || len(st.Selected) == 0 {
		return nil
	}
	segs := make([]Segment, 0, len(st.Selected))
	var last rotary.Point
	for i, idx := range st.Selected {
		if idx < 0 || idx >= len(layout.Positions) {
			return nil
		}
		p := layout.Positions[idx]
		if i > 0 {
			segs = append(segs, Segment{From: last, To: p})
		}
		last = p
	}
	return append(segs, Segment{From: last, To: st.Pointer})
}
