package render

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// highlightPop animates the radius of one selected letter's highlight.
type highlightPop struct {
	tween  *gween.Tween
	radius float32
}

// highlights holds one pop per selection slot, in selection order.
type highlights struct {
	items    []highlightPop
	target   float32
	duration float32
}

// push starts a pop for the next selection slot.
func (h *highlights) push() {
	if h.duration <= 0 {
		h.items = append(h.items, highlightPop{radius: h.target})
		return
	}
	h.items = append(h.items, highlightPop{
		tween: gween.New(0, h.target, h.duration, ease.OutBack),
	})
}

// update advances every running pop by dt seconds.
func (h *highlights) update(dt float32) {
	for i := range h.items {
		p := &h.items[i]
		if p.tween == nil {
			continue
		}
		r, finished := p.tween.Update(dt)
		p.radius = r
		if finished {
			p.tween = nil
			p.radius = h.target
		}
	}
}

func (h *highlights) reset() {
	h.items = h.items[:0]
}

// radius returns the current radius for slot. Slots without a pop, which
// happens when the renderer attaches mid-gesture, draw at full size.
func (h *highlights) radius(slot int) float32 {
	if slot < 0 || slot >= len(h.items) {
		return h.target
	}
	return h.items[slot].radius
}
