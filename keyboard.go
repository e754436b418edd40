package rotary

import (
	"fmt"
	"log/slog"
	"slices"
)

// Keyboard is the top-level object that owns the letter layout, gesture
// state, word listeners and injected input. It is not safe for concurrent
// use: every method must be called from the goroutine delivering input,
// which is also where a renderer reads state.
type Keyboard struct {
	hitRadius float64
	policy    RepeatPolicy

	layout layoutEngine
	state  gestureState

	listener WordListener
	handlers handlerRegistry
	store    EntityStore

	diagHook func(Diagnostic)
	logger   *slog.Logger
	debug    bool

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewKeyboard creates a keyboard from cfg. Zero HitRadius and
// LetterRadiusRatio take their defaults. cfg is not validated; use
// Config.Validate or LoadConfig for that.
func NewKeyboard(cfg Config) *Keyboard {
	cfg = cfg.withDefaults()
	k := &Keyboard{
		hitRadius: cfg.HitRadius,
		policy:    cfg.RepeatPolicy,
		logger:    newNopLogger(),
		debug:     cfg.Debug,
	}
	k.state.reset()
	k.layout.ratio = cfg.LetterRadiusRatio
	if !validRatio(k.layout.ratio) {
		k.layout.ratio = DefaultLetterRadiusRatio
	}
	k.SetLetters(cfg.Letters)
	return k
}

// Config returns the keyboard's current settings.
func (k *Keyboard) Config() Config {
	return Config{
		Letters:           k.Letters(),
		HitRadius:         k.hitRadius,
		LetterRadiusRatio: k.layout.ratio,
		RepeatPolicy:      k.policy,
		Debug:             k.debug,
	}
}

// ApplyConfig replaces every setting with cfg. The gesture in progress, if
// any, is aborted only when the letters actually change.
func (k *Keyboard) ApplyConfig(cfg Config) {
	cfg = cfg.withDefaults()
	k.hitRadius = cfg.HitRadius
	k.policy = cfg.RepeatPolicy
	k.debug = cfg.Debug
	if cfg.LetterRadiusRatio != k.layout.ratio {
		k.SetLetterRadiusRatio(cfg.LetterRadiusRatio)
	}
	if !slices.Equal(cfg.Letters, k.layout.letters) {
		k.SetLetters(cfg.Letters)
	}
}

// SetLetters replaces the letter set and recomputes the layout. letters is
// copied. Replacing letters while dragging aborts the gesture without a
// final word, since the selected indices refer to the old set.
func (k *Keyboard) SetLetters(letters []string) {
	if k.state.dragging {
		k.abort("letters reconfigured")
	}
	k.layout.setLetters(letters)
	k.reportLayout()
}

// Letters returns a copy of the current letter set.
func (k *Keyboard) Letters() []string {
	if len(k.layout.letters) == 0 {
		return nil
	}
	return append([]string(nil), k.layout.letters...)
}

// Resize notifies the keyboard of a new bounding box, typically from the
// host's layout pass. A gesture in progress continues.
func (k *Keyboard) Resize(size Size) {
	if size == k.layout.size {
		return
	}
	k.layout.resize(size)
	k.reportLayout()
}

// Size returns the last bounding box passed to Resize.
func (k *Keyboard) Size() Size {
	return k.layout.size
}

// SetLetterRadiusRatio sets the fraction of the circle radius at which
// letters are placed and recomputes the layout. Ratios outside (0, 1] are
// ignored and reported as a diagnostic.
func (k *Keyboard) SetLetterRadiusRatio(ratio float64) {
	if !validRatio(ratio) {
		k.diagnose(Diagnostic{Kind: DiagInvalidSetting, Index: -1,
			Reason: fmt.Sprintf("letter radius ratio %v outside (0, 1]", ratio)})
		return
	}
	k.layout.setRatio(ratio)
	k.reportLayout()
}

// SetHitRadius sets the distance within which a pointer hits a letter. Hosts
// scale this to screen density.
func (k *Keyboard) SetHitRadius(r float64) {
	k.hitRadius = r
}

// HitRadius returns the current hit radius.
func (k *Keyboard) HitRadius() float64 {
	return k.hitRadius
}

// SetRepeatPolicy selects how immediate repeats of the last selected letter
// are handled. It takes effect on the next move.
func (k *Keyboard) SetRepeatPolicy(p RepeatPolicy) {
	k.policy = p
}

// Layout returns a copy of the current layout. ok is false when no layout
// has been computed: no letters, or no valid size yet.
func (k *Keyboard) Layout() (layout Layout, ok bool) {
	l, ok := k.layout.current()
	if !ok {
		return Layout{}, false
	}
	l.Letters = append([]string(nil), l.Letters...)
	l.Positions = append([]Point(nil), l.Positions...)
	return l, true
}

// Circle returns the backing circle. ok is false until a valid size is known.
func (k *Keyboard) Circle() (Circle, bool) {
	if !k.layout.size.Valid() {
		return Circle{}, false
	}
	return CircleFor(k.layout.size), true
}

// HitTest maps p to a letter using the current layout and hit radius.
func (k *Keyboard) HitTest(p Point) HitResult {
	l, ok := k.layout.current()
	return HitTest(p, l, ok, k.hitRadius)
}

func (k *Keyboard) reportLayout() {
	if _, ok := k.layout.current(); ok {
		k.diagnose(Diagnostic{Kind: DiagLayoutComputed, Index: -1, Letters: len(k.layout.letters)})
	} else {
		k.diagnose(Diagnostic{Kind: DiagLayoutCleared, Index: -1, Letters: len(k.layout.letters)})
	}
}

// validRatio reports whether ratio lies in (0, 1]. NaN is rejected.
func validRatio(ratio float64) bool {
	return ratio > 0 && ratio <= 1
}
