package host

import (
	"context"
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/rotary"
	"github.com/phanxgames/rotary/render"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// KeyboardTop is the screen y of the keyboard's top edge. The keyboard
	// fills the window below it.
	KeyboardTop float64

	ShowFPS    bool
	ClearColor color.Color
	Style      render.Style

	// ConfigPath, when set, is watched and re-applied to the keyboard each
	// time the file is written.
	ConfigPath string

	// ScreenshotDir receives captures requested by a test script.
	ScreenshotDir string

	// ExitWhenScriptDone ends Run once an attached TestRunner finishes.
	ExitWhenScriptDone bool

	// OnUpdate runs once per tick after input. A non-nil error ends Run.
	OnUpdate func() error
	// OnDraw runs after the keyboard is drawn.
	OnDraw func(screen *ebiten.Image)
}

// DefaultRunConfig returns a 540x960 portrait window with the keyboard in
// the lower part and the reference style scaled to fit.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:       "rotary",
		Width:       540,
		Height:      960,
		KeyboardTop: 420,
		ClearColor:  color.White,
		Style:       render.DefaultStyle().Scaled(0.5),
	}
}

// Run opens a window and drives kb until the window is closed. Escape
// aborts the gesture in progress.
func Run(kb *rotary.Keyboard, cfg RunConfig) error {
	g, err := newGame(kb, cfg)
	if err != nil {
		return err
	}
	defer g.close()

	if cfg.ConfigPath != "" {
		w, err := WatchConfig(context.Background(), cfg.ConfigPath)
		if err != nil {
			return fmt.Errorf("watch %s: %w", cfg.ConfigPath, err)
		}
		g.watcher = w
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// game implements ebiten.Game around one keyboard.
type game struct {
	cfg      RunConfig
	kb       *rotary.Keyboard
	renderer *render.Renderer
	input    *Input
	fps      FPSOverlay
	shots    *render.Screenshotter
	watcher  *ConfigWatcher
}

func newGame(kb *rotary.Keyboard, cfg RunConfig) (*game, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.ClearColor == nil {
		cfg.ClearColor = color.White
	}
	if cfg.Style == (render.Style{}) {
		cfg.Style = render.DefaultStyle()
	}

	r, err := render.New(kb, cfg.Style)
	if err != nil {
		return nil, err
	}
	g := &game{
		cfg:      cfg,
		kb:       kb,
		renderer: r,
		input:    NewInput(kb),
		shots:    render.NewScreenshotter(cfg.ScreenshotDir),
	}
	g.input.Offset = rotary.Pt(0, cfg.KeyboardTop)
	if runner := kb.TestRunner(); runner != nil && runner.OnScreenshot == nil {
		runner.OnScreenshot = g.shots.Queue
	}
	return g, nil
}

func (g *game) close() {
	g.renderer.Close()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[rotary] close watcher: %v\n", err)
		}
	}
}

// applyPending applies reloaded configs and reports reload errors without
// blocking.
func (g *game) applyPending() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case cfg := <-g.watcher.Updates():
			g.kb.ApplyConfig(cfg)
		case err := <-g.watcher.Errors():
			_, _ = fmt.Fprintf(os.Stderr, "[rotary] %v\n", err)
		default:
			return
		}
	}
}

func (g *game) Update() error {
	g.applyPending()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.kb.Abort()
	}
	if !g.kb.Update() {
		g.input.Poll()
	}

	dt := 1 / float64(ebiten.TPS())
	g.renderer.Update(float32(dt))
	if g.cfg.ShowFPS {
		g.fps.Update(dt)
	}

	if g.cfg.OnUpdate != nil {
		if err := g.cfg.OnUpdate(); err != nil {
			return err
		}
	}
	if g.cfg.ExitWhenScriptDone {
		if r := g.kb.TestRunner(); r != nil && r.Done() {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.ClearColor)
	g.renderer.Draw(screen, rotary.Pt(0, g.cfg.KeyboardTop))
	if g.cfg.OnDraw != nil {
		g.cfg.OnDraw(screen)
	}
	if g.cfg.ShowFPS {
		g.fps.Draw(screen)
	}
	if _, err := g.shots.Flush(screen); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[rotary] %v\n", err)
	}
}

// Layout resizes the keyboard to the area below KeyboardTop.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.kb.Resize(keyboardSize(outsideWidth, outsideHeight, g.cfg.KeyboardTop))
	return outsideWidth, outsideHeight
}

func keyboardSize(w, h int, top float64) rotary.Size {
	return rotary.Size{Width: float64(w), Height: max(float64(h)-top, 0)}
}
