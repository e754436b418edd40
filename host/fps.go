package host

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay prints the current FPS and TPS in the top-left corner, refreshed
// every half second.
type FPSOverlay struct {
	elapsed float64
	label   string
}

// Update advances the refresh timer by dt seconds.
func (o *FPSOverlay) Update(dt float64) {
	o.elapsed += dt
	if o.label != "" && o.elapsed < 0.5 {
		return
	}
	o.elapsed = 0
	o.label = fpsLabel(ebiten.ActualFPS(), ebiten.ActualTPS())
}

// Draw prints the last label onto dst.
func (o *FPSOverlay) Draw(dst *ebiten.Image) {
	if o.label == "" {
		return
	}
	ebitenutil.DebugPrint(dst, o.label)
}

func fpsLabel(fps, tps float64) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f", fps, tps)
}
