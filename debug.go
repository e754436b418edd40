package rotary

import (
	"context"
	"fmt"
	"log/slog"
	"os"
)

// DiagnosticKind identifies a diagnostic emitted by a Keyboard.
type DiagnosticKind uint8

const (
	DiagLayoutComputed DiagnosticKind = iota // letter positions recomputed
	DiagLayoutCleared                        // layout became absent (no letters or unknown size)
	DiagGestureStarted                       // pointer down hit a letter
	DiagGestureMissed                        // pointer down hit nothing
	DiagLetterSelected                       // an index was appended to the selection
	DiagRepeatSkipped                        // an immediate repeat was dropped by RepeatCollapse
	DiagGestureEnded                         // pointer up finalised a word
	DiagGestureAborted                       // gesture cancelled without a final word
	DiagDroppedWord                          // a word was produced with no listener registered
	DiagInvalidSetting                       // a setter rejected its argument
)

var diagNames = [...]string{
	DiagLayoutComputed: "layout computed",
	DiagLayoutCleared:  "layout cleared",
	DiagGestureStarted: "gesture started",
	DiagGestureMissed:  "pointer down missed",
	DiagLetterSelected: "letter selected",
	DiagRepeatSkipped:  "repeat skipped",
	DiagGestureEnded:   "gesture ended",
	DiagGestureAborted: "gesture aborted",
	DiagDroppedWord:    "word dropped: no listener",
	DiagInvalidSetting: "invalid setting ignored",
}

// String returns a human-readable description of the kind.
func (k DiagnosticKind) String() string {
	if int(k) < len(diagNames) {
		return diagNames[k]
	}
	return "unknown"
}

// Diagnostic describes something the keyboard did. Fields that do not apply
// to a kind are left zero, except Index which is -1.
type Diagnostic struct {
	Kind    DiagnosticKind
	Index   int
	Word    string
	Letters int
	Reason  string
}

// String formats d as a single log line body.
func (d Diagnostic) String() string {
	s := d.Kind.String()
	if d.Index >= 0 {
		s += fmt.Sprintf(" index=%d", d.Index)
	}
	if d.Word != "" {
		s += fmt.Sprintf(" word=%q", d.Word)
	}
	if d.Letters > 0 {
		s += fmt.Sprintf(" letters=%d", d.Letters)
	}
	if d.Reason != "" {
		s += " reason=" + d.Reason
	}
	return s
}

// nopHandler is a slog.Handler that discards all records. Enabled returns
// false so formatting is skipped entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// SetDiagnosticHook registers fn to receive every diagnostic. Pass nil to
// remove it.
func (k *Keyboard) SetDiagnosticHook(fn func(Diagnostic)) {
	k.diagHook = fn
}

// SetLogger routes diagnostics to l. Dropped words log at Warn, everything
// else at Debug. Pass nil to restore the default silent logger.
func (k *Keyboard) SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	k.logger = l
}

// SetDebugMode enables or disables debug mode. When enabled, every
// diagnostic is also printed to stderr.
func (k *Keyboard) SetDebugMode(enabled bool) {
	k.debug = enabled
}

func (k *Keyboard) diagnose(d Diagnostic) {
	if k.diagHook != nil {
		k.diagHook(d)
	}

	level := slog.LevelDebug
	if d.Kind == DiagDroppedWord {
		level = slog.LevelWarn
	}
	if k.logger.Enabled(context.Background(), level) {
		k.logger.LogAttrs(context.Background(), level, d.Kind.String(),
			slog.Int("index", d.Index),
			slog.String("word", d.Word),
			slog.Int("letters", d.Letters),
			slog.String("reason", d.Reason),
		)
	}

	if k.debug {
		_, _ = fmt.Fprintf(os.Stderr, "[rotary] %s\n", d)
	}
}
