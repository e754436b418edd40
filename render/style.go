package render

import "image/color"

// Style holds colours and sizes used to draw a keyboard. Lengths are in the
// same units as the keyboard's layout.
type Style struct {
	CircleColor    color.Color
	TrailColor     color.Color
	HighlightColor color.Color
	TextColor      color.Color

	TrailWidth      float64
	HighlightRadius float64
	FontSize        float64

	// PopDuration is how long, in seconds, a highlight takes to grow to
	// HighlightRadius after its letter is selected. 0 disables the tween.
	PopDuration float32
}

// DefaultStyle returns the reference look: a translucent light grey circle,
// a translucent blue trail and highlights, and black letters, sized for a
// circle roughly a thousand units across.
func DefaultStyle() Style {
	return Style{
		CircleColor:     color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 200},
		TrailColor:      color.NRGBA{B: 0xff, A: 150},
		HighlightColor:  color.NRGBA{B: 0xff, A: 150},
		TextColor:       color.Black,
		TrailWidth:      50,
		HighlightRadius: 100,
		FontSize:        200,
		PopDuration:     0.12,
	}
}

// Scaled returns a copy of s with every length multiplied by f.
func (s Style) Scaled(f float64) Style {
	s.TrailWidth *= f
	s.HighlightRadius *= f
	s.FontSize *= f
	return s
}
