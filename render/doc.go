// Package render draws a [rotary.Keyboard] with Ebitengine.
//
// The renderer only reads keyboard state. Each frame it paints the backing
// circle, the trail joining the selected letters, a highlight disc under
// every selected letter (popping in with a [gween] tween), the live segment
// from the last letter to the pointer, and the letters themselves.
//
//	r, err := render.New(kb, render.DefaultStyle().Scaled(0.4))
//	if err != nil { ... }
//	defer r.Close()
//
//	// in ebiten.Game:
//	r.Update(1 / 60.0)
//	r.Draw(screen, rotary.Pt(0, 160))
//
// [gween]: https://github.com/tanema/gween
package render
