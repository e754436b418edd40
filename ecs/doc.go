// Package ecs bridges rotary word events into a [Donburi] world.
//
// [NewDonburiStore] publishes every [rotary.WordEvent] as a typed Donburi
// event; subscribe to [WordEventType] in your systems and drain it with
// ProcessEvents each tick. [RecordEnteredWords] goes one step further and
// spawns an entity carrying an [EnteredWord] component for every completed
// gesture.
//
//	store := ecs.NewDonburiStore(world)
//	kb.SetEntityStore(store)
//	ecs.RecordEnteredWords(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
