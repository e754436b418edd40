// Package rotary is the gesture engine of a rotary letter picker: letters
// sit evenly around a circle and the user drags a pointer from letter to
// letter to spell a word.
//
// The package lays letters out, maps pointer positions to letters, runs the
// pointer down/move/up state machine and reports partial and final words. It
// never draws; the render package reads [Keyboard.Layout] and
// [Keyboard.State] to do that, and the host package feeds Ebitengine input
// in.
//
// # Quick start
//
//	kb := rotary.NewKeyboard(rotary.Config{
//		Letters: []string{"c", "a", "u", "s", "e", "d"},
//	})
//	kb.Resize(rotary.Size{Width: 1080, Height: 1080})
//	kb.SetWordListener(rotary.WordListenerFuncs{
//		Partial: func(w string) { fmt.Println("typing", w) },
//		Entered: func(w string) { fmt.Println("entered", w) },
//	})
//
//	kb.PointerDown(p) // from the host's input loop
//	kb.PointerMove(p)
//	kb.PointerUp(p)
//
// # Gestures
//
// A gesture starts only when pointer down lands within the hit radius of a
// letter. Every move while dragging appends the hit letter, if any, and
// reports the partial word; pointer up reports the final word once and
// returns to idle. Moves never remove letters. Whether an immediate repeat
// of the last letter is appended is set by [RepeatPolicy].
//
// Replacing the letters while dragging aborts the gesture without a final
// word. [Keyboard.Abort] does the same on request.
//
// # Diagnostics
//
// Keyboards are silent by default. Attach a hook with
// [Keyboard.SetDiagnosticHook], a [log/slog] logger with [Keyboard.SetLogger],
// or print everything to stderr with [Keyboard.SetDebugMode].
package rotary
