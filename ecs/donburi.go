package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/rotary"
)

// WordEventType is the Donburi event type for rotary word events.
var WordEventType = events.NewEventType[rotary.WordEvent]()

// EnteredWord is the data of an entity spawned by RecordEnteredWords.
type EnteredWord struct {
	Word    string
	Indices []int
	// Seq numbers entered words from 1 in the order they were processed.
	Seq int
}

// EnteredWordComponent tags entities spawned for completed gestures.
var EnteredWordComponent = donburi.NewComponentType[EnteredWord]()

var enteredWordQuery = donburi.NewQuery(filter.Contains(EnteredWordComponent))

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Word
// events are queued on WordEventType until ProcessEvents is called.
func NewDonburiStore(world donburi.World) rotary.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event rotary.WordEvent) {
	WordEventType.Publish(s.world, event)
}

// RecordEnteredWords subscribes to WordEventType and creates one entity with
// an EnteredWord component for each WordEntered event processed.
func RecordEnteredWords(world donburi.World) {
	WordEventType.Subscribe(world, recordEnteredWord)
}

// StopRecordingEnteredWords removes the subscription added by
// RecordEnteredWords.
func StopRecordingEnteredWords(world donburi.World) {
	WordEventType.Unsubscribe(world, recordEnteredWord)
}

func recordEnteredWord(w donburi.World, ev rotary.WordEvent) {
	if ev.Kind != rotary.WordEntered {
		return
	}
	e := w.Create(EnteredWordComponent)
	EnteredWordComponent.SetValue(w.Entry(e), EnteredWord{
		Word:    ev.Word,
		Indices: append([]int(nil), ev.Indices...),
		Seq:     enteredWordQuery.Count(w),
	})
}

// EnteredWords returns the recorded words ordered by Seq.
func EnteredWords(world donburi.World) []EnteredWord {
	words := make([]EnteredWord, enteredWordQuery.Count(world))
	enteredWordQuery.Each(world, func(entry *donburi.Entry) {
		w := EnteredWordComponent.Get(entry)
		if w.Seq >= 1 && w.Seq <= len(words) {
			words[w.Seq-1] = *w
		}
	})
	return words
}
