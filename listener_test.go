package rotary

import (
	"slices"
	"testing"
)

type fakeStore struct {
	events []WordEvent
}

func (s *fakeStore) EmitEvent(ev WordEvent) { s.events = append(s.events, ev) }

func TestNoListenerIsExplicit(t *testing.T) {
	kb := NewKeyboard(Config{Letters: causedLetters})
	if kb.HasWordListener() {
		t.Error("new keyboard should have no listener")
	}
	kb.SetWordListener(&recorder{})
	if !kb.HasWordListener() {
		t.Error("HasWordListener = false after SetWordListener")
	}
	kb.ClearWordListener()
	if kb.HasWordListener() {
		t.Error("HasWordListener = true after ClearWordListener")
	}
	kb.SetWordListener(nil)
	if kb.HasWordListener() {
		t.Error("SetWordListener(nil) should clear")
	}
}

func TestNoListenerDropsWords(t *testing.T) {
	kb := NewKeyboard(Config{Letters: causedLetters})
	kb.Resize(Size{1000, 1000})
	l, _ := kb.Layout()

	var dropped []string
	kb.SetDiagnosticHook(func(d Diagnostic) {
		if d.Kind == DiagDroppedWord {
			dropped = append(dropped, d.Word)
		}
	})

	kb.PointerDown(l.Positions[0])
	kb.PointerMove(l.Positions[1])
	kb.PointerUp(l.Positions[1])

	if !slices.Equal(dropped, []string{"ca", "ca"}) {
		t.Errorf("dropped = %v, want [ca ca]", dropped)
	}
	if kb.Dragging() {
		t.Error("gesture should still finish without a listener")
	}
}

func TestSetWordListenerReplaces(t *testing.T) {
	kb, first, l := newTestKeyboard(t)
	second := &recorder{}
	kb.SetWordListener(second)

	kb.PointerDown(l.Positions[0])
	kb.PointerUp(l.Positions[0])

	if len(first.entered) != 0 {
		t.Errorf("replaced listener still called: %v", first.entered)
	}
	if !slices.Equal(second.entered, []string{"c"}) {
		t.Errorf("entered = %v, want [c]", second.entered)
	}
}

func TestWordListenerFuncs_NilFields(t *testing.T) {
	var f WordListenerFuncs
	f.OnPartialWord("x")
	f.OnWordEntered("x")
}

func TestOnWordEvent_OrderAndRemove(t *testing.T) {
	kb, rec, l := newTestKeyboard(t)

	var order []string
	h1 := kb.OnWordEvent(func(ev WordEvent) {
		if ev.Kind == WordEntered {
			order = append(order, "h1:"+ev.Word)
		}
	})
	kb.OnWordEvent(func(ev WordEvent) {
		if ev.Kind == WordEntered {
			order = append(order, "h2:"+ev.Word)
		}
	})
	kb.SetWordListener(WordListenerFuncs{
		Entered: func(w string) {
			order = append(order, "listener:"+w)
			rec.OnWordEntered(w)
		},
	})

	kb.PointerDown(l.Positions[3])
	kb.PointerUp(l.Positions[3])
	if want := []string{"h1:s", "h2:s", "listener:s"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}

	order = order[:0]
	h1.Remove()
	h1.Remove()
	kb.PointerDown(l.Positions[4])
	kb.PointerUp(l.Positions[4])
	if want := []string{"h2:e", "listener:e"}; !slices.Equal(order, want) {
		t.Errorf("after remove order = %v, want %v", order, want)
	}
}

func TestCallbackHandle_ZeroValue(t *testing.T) {
	var h CallbackHandle
	h.Remove()
}

func TestWordEventFields(t *testing.T) {
	kb, _, l := newTestKeyboard(t)

	var events []WordEvent
	kb.OnWordEvent(func(ev WordEvent) { events = append(events, ev) })

	kb.PointerDown(l.Positions[1])
	kb.PointerMove(l.Positions[2])
	kb.PointerUp(Pt(10, 20))

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	if ev := events[0]; ev.Kind != WordGestureStarted || ev.Index != 1 || ev.Word != "a" {
		t.Errorf("start event = %+v", ev)
	}
	if ev := events[1]; ev.Kind != WordLetterSelected || ev.Index != 2 || !slices.Equal(ev.Indices, []int{1, 2}) {
		t.Errorf("select event = %+v", ev)
	}
	if ev := events[2]; ev.Kind != WordPartial || ev.Word != "au" {
		t.Errorf("partial event = %+v", ev)
	}
	ev := events[3]
	if ev.Kind != WordEntered || ev.Word != "au" || ev.Pointer != Pt(10, 20) || !slices.Equal(ev.Indices, []int{1, 2}) {
		t.Errorf("entered event = %+v", ev)
	}

	// Retained indices are not overwritten by the next gesture.
	kb.PointerDown(l.Positions[5])
	kb.PointerMove(l.Positions[4])
	if !slices.Equal(events[3].Indices, []int{1, 2}) {
		t.Errorf("retained indices changed to %v", events[3].Indices)
	}
}

func TestEntityStoreReceivesEvents(t *testing.T) {
	kb, _, l := newTestKeyboard(t)
	store := &fakeStore{}
	kb.SetEntityStore(store)

	kb.PointerDown(l.Positions[0])
	kb.PointerUp(l.Positions[0])

	if len(store.events) != 2 {
		t.Fatalf("store got %d events, want 2", len(store.events))
	}
	if store.events[1].Kind != WordEntered || store.events[1].Word != "c" {
		t.Errorf("store last event = %+v", store.events[1])
	}
}

func TestWordEventKindString(t *testing.T) {
	for k, want := range map[WordEventKind]string{
		WordGestureStarted: "gesture-started",
		WordLetterSelected: "letter-selected",
		WordPartial:        "partial",
		WordEntered:        "entered",
		WordGestureAborted: "gesture-aborted",
		WordEventKind(99):  "unknown",
	} {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}

func TestOnWordEvent_RemoveDuringDispatch(t *testing.T) {
	kb, _, l := newTestKeyboard(t)

	var calls []string
	var h1, h2 CallbackHandle
	h1 = kb.OnWordEvent(func(ev WordEvent) {
		calls = append(calls, "h1")
		h1.Remove()
		h2.Remove()
	})
	h2 = kb.OnWordEvent(func(ev WordEvent) {
		calls = append(calls, "h2")
	})
	kb.OnWordEvent(func(ev WordEvent) {
		calls = append(calls, "h3")
	})

	kb.PointerDown(l.Positions[0])
	if want := []string{"h1", "h3"}; !slices.Equal(calls, want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}

	calls = calls[:0]
	kb.PointerMove(l.Positions[1])
	if want := []string{"h3", "h3"}; !slices.Equal(calls, want) {
		t.Errorf("calls after removal = %v, want %v", calls, want)
	}
}

func TestOnWordEvent_RegisterDuringDispatch(t *testing.T) {
	kb, _, l := newTestKeyboard(t)

	var late int
	registered := false
	kb.OnWordEvent(func(ev WordEvent) {
		if !registered {
			registered = true
			kb.OnWordEvent(func(WordEvent) { late++ })
		}
	})

	kb.PointerDown(l.Positions[0])
	if late != 0 {
		t.Errorf("handler registered during dispatch ran for the same event: %d", late)
	}
	kb.PointerUp(l.Positions[0])
	if late != 1 {
		t.Errorf("late handler calls = %d, want 1", late)
	}
}

func TestSetWordListener_TypedNil(t *testing.T) {
	kb, _, l := newTestKeyboard(t)

	var rec *recorder
	kb.SetWordListener(rec)
	if kb.HasWordListener() {
		t.Fatal("nil *recorder counted as a listener")
	}

	var dropped int
	kb.SetDiagnosticHook(func(d Diagnostic) {
		if d.Kind == DiagDroppedWord {
			dropped++
		}
	})
	kb.PointerDown(l.Positions[0])
	kb.PointerUp(l.Positions[0])
	if dropped != 1 {
		t.Errorf("dropped words = %d, want 1", dropped)
	}
}
