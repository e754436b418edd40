package ecs

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/phanxgames/rotary"
)

var _ rotary.EntityStore = NewDonburiStore(nil)

func newKeyboard(t *testing.T) *rotary.Keyboard {
	t.Helper()
	kb := rotary.NewKeyboard(rotary.Config{
		Letters: []string{"c", "a", "u", "s", "e", "d"},
	})
	kb.Resize(rotary.Size{Width: 1000, Height: 1000})
	return kb
}

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []rotary.WordEvent
	WordEventType.Subscribe(world, func(w donburi.World, e rotary.WordEvent) {
		received = append(received, e)
	})

	store.EmitEvent(rotary.WordEvent{Kind: rotary.WordPartial, Word: "ca", Index: 1})
	store.EmitEvent(rotary.WordEvent{Kind: rotary.WordEntered, Word: "cat", Indices: []int{0, 1, 2}})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	WordEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Kind != rotary.WordPartial || e.Word != "ca" || e.Index != 1 {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Kind != rotary.WordEntered || e.Word != "cat" || len(e.Indices) != 3 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiStore_KeyboardGesture(t *testing.T) {
	world := donburi.NewWorld()
	kb := newKeyboard(t)
	kb.SetEntityStore(NewDonburiStore(world))

	var kinds []rotary.WordEventKind
	WordEventType.Subscribe(world, func(w donburi.World, e rotary.WordEvent) {
		kinds = append(kinds, e.Kind)
	})

	if !kb.InjectTrace(0, 1) {
		t.Fatal("InjectTrace failed")
	}
	for kb.Update() {
	}
	events.ProcessAllEvents(world)

	want := []rotary.WordEventKind{
		rotary.WordGestureStarted,
		rotary.WordLetterSelected,
		rotary.WordPartial,
		rotary.WordEntered,
	}
	if len(kinds) != len(want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestRecordEnteredWords(t *testing.T) {
	world := donburi.NewWorld()
	kb := newKeyboard(t)
	kb.SetEntityStore(NewDonburiStore(world))
	RecordEnteredWords(world)

	kb.InjectTrace(0, 1, 2, 3, 4, 5)
	kb.InjectTrace(1, 0)
	for kb.Update() {
	}
	WordEventType.ProcessEvents(world)

	words := EnteredWords(world)
	if len(words) != 2 {
		t.Fatalf("recorded %d words, want 2", len(words))
	}
	if words[0].Word != "caused" || words[0].Seq != 1 {
		t.Errorf("words[0] = %+v, want caused/1", words[0])
	}
	if words[1].Word != "ac" || words[1].Seq != 2 {
		t.Errorf("words[1] = %+v, want ac/2", words[1])
	}
	if len(words[1].Indices) != 2 || words[1].Indices[0] != 1 || words[1].Indices[1] != 0 {
		t.Errorf("words[1].Indices = %v, want [1 0]", words[1].Indices)
	}
}

func TestStopRecordingEnteredWords(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)
	RecordEnteredWords(world)
	StopRecordingEnteredWords(world)

	store.EmitEvent(rotary.WordEvent{Kind: rotary.WordEntered, Word: "sad"})
	WordEventType.ProcessEvents(world)

	if n := len(EnteredWords(world)); n != 0 {
		t.Errorf("recorded %d words after unsubscribe, want 0", n)
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	WordEventType.Subscribe(world, func(w donburi.World, e rotary.WordEvent) {
		count1++
	})
	WordEventType.Subscribe(world, func(w donburi.World, e rotary.WordEvent) {
		count2++
	})

	store.EmitEvent(rotary.WordEvent{Kind: rotary.WordGestureAborted})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
