package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/rotary"
)

// Renderer draws one keyboard. It is not safe for concurrent use; call Update
// and Draw from the Ebitengine game loop.
type Renderer struct {
	kb     *rotary.Keyboard
	style  Style
	source *text.GoTextFaceSource
	face   *text.GoTextFace
	pops   highlights
	handle rotary.CallbackHandle
}

// New returns a renderer for kb using style. Letters are drawn with the Go
// Regular font.
func New(kb *rotary.Keyboard, style Style) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load letter font: %w", err)
	}
	r := &Renderer{
		kb:     kb,
		source: source,
		face:   &text.GoTextFace{Source: source},
	}
	r.SetStyle(style)
	r.handle = kb.OnWordEvent(r.onWordEvent)
	return r, nil
}

// Close detaches the renderer from its keyboard.
func (r *Renderer) Close() {
	r.handle.Remove()
}

// Style returns the current style.
func (r *Renderer) Style() Style {
	return r.style
}

// SetStyle replaces the style. Running highlight pops keep their old target.
func (r *Renderer) SetStyle(s Style) {
	r.style = s
	r.face.Size = s.FontSize
	r.pops.target = float32(s.HighlightRadius)
	r.pops.duration = s.PopDuration
}

func (r *Renderer) onWordEvent(ev rotary.WordEvent) {
	switch ev.Kind {
	case rotary.WordGestureStarted:
		r.pops.reset()
		r.pops.push()
	case rotary.WordLetterSelected:
		r.pops.push()
	case rotary.WordEntered, rotary.WordGestureAborted:
		r.pops.reset()
	}
}

// Update advances highlight animations by dt seconds.
func (r *Renderer) Update(dt float32) {
	r.pops.update(dt)
}

// Draw paints the keyboard onto dst with the keyboard's origin at origin.
// Nothing is drawn until the keyboard has a valid size.
func (r *Renderer) Draw(dst *ebiten.Image, origin rotary.Point) {
	layout, ok := r.kb.Layout()
	if !ok {
		return
	}
	st := r.kb.State()
	c := layout.Circle.Center.Add(origin)

	vector.DrawFilledCircle(dst, float32(c.X), float32(c.Y), float32(layout.Circle.Radius), r.style.CircleColor, true)

	w := float32(r.style.TrailWidth)
	for _, seg := range TrailSegments(layout, st) {
		a, b := seg.From.Add(origin), seg.To.Add(origin)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, r.style.TrailColor, true)
	}

	if st.Dragging {
		for slot, idx := range st.Selected {
			p := layout.Positions[idx].Add(origin)
			vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), r.pops.radius(slot), r.style.HighlightColor, true)
		}
	}

	for i, letter := range layout.Letters {
		p := layout.Positions[i].Add(origin)
		op := &text.DrawOptions{}
		op.GeoM.Translate(p.X, p.Y)
		op.ColorScale.ScaleWithColor(r.style.TextColor)
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(dst, letter, r.face, op)
	}
}
