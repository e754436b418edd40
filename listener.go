package rotary

import (
	"reflect"
	"slices"
)

// WordListener receives the words built by a gesture. A Keyboard holds at
// most one WordListener; use OnWordEvent for additional subscribers.
type WordListener interface {
	// OnPartialWord is called on every pointer move while dragging.
	OnPartialWord(word string)
	// OnWordEntered is called exactly once per completed gesture.
	OnWordEntered(word string)
}

// WordListenerFuncs adapts a pair of functions to WordListener. Nil fields
// are skipped.
type WordListenerFuncs struct {
	Partial func(word string)
	Entered func(word string)
}

// OnPartialWord calls f.Partial if set.
func (f WordListenerFuncs) OnPartialWord(word string) {
	if f.Partial != nil {
		f.Partial(word)
	}
}

// OnWordEntered calls f.Entered if set.
func (f WordListenerFuncs) OnWordEntered(word string) {
	if f.Entered != nil {
		f.Entered(word)
	}
}

// EntityStore is the interface for optional ECS integration.
// When set on a Keyboard, every word event is forwarded to it.
type EntityStore interface {
	EmitEvent(event WordEvent)
}

// --- Handler registry ---

type wordHandler struct {
	id uint32
	fn func(WordEvent)
}

type handlerRegistry struct {
	word   []wordHandler
	nextID uint32
}

// CallbackHandle allows removing a registered word event callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing the zero CallbackHandle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	h.reg.word = removeWordHandler(h.reg.word, h.id)
}

func (r *handlerRegistry) registered(id uint32) bool {
	for i := range r.word {
		if r.word[i].id == id {
			return true
		}
	}
	return false
}

func removeWordHandler(s []wordHandler, id uint32) []wordHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = wordHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// SetWordListener registers l as the keyboard's single word listener,
// replacing any previous one. Passing nil, including a nil pointer wrapped in
// the interface, is the same as ClearWordListener.
func (k *Keyboard) SetWordListener(l WordListener) {
	if isNilListener(l) {
		l = nil
	}
	k.listener = l
}

func isNilListener(l WordListener) bool {
	if l == nil {
		return true
	}
	v := reflect.ValueOf(l)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// ClearWordListener removes the word listener. Words produced while no
// listener is registered are dropped and reported as DiagDroppedWord.
func (k *Keyboard) ClearWordListener() {
	k.listener = nil
}

// HasWordListener reports whether a word listener is registered.
func (k *Keyboard) HasWordListener() bool {
	return k.listener != nil
}

// OnWordEvent registers a callback that receives every WordEvent, in
// registration order, before the word listener is called.
func (k *Keyboard) OnWordEvent(fn func(WordEvent)) CallbackHandle {
	k.handlers.nextID++
	id := k.handlers.nextID
	k.handlers.word = append(k.handlers.word, wordHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &k.handlers}
}

// SetEntityStore sets the optional ECS bridge.
func (k *Keyboard) SetEntityStore(store EntityStore) {
	k.store = store
}

// --- Event dispatch ---

func (k *Keyboard) fireWordEvent(kind WordEventKind, word string) {
	ev := WordEvent{
		Kind:    kind,
		Word:    word,
		Index:   -1,
		Indices: append([]int(nil), k.state.selected...),
		Pointer: k.state.pointer,
	}
	if n := len(ev.Indices); n > 0 {
		ev.Index = ev.Indices[n-1]
	}
	k.dispatch(ev)
}

// dispatch delivers ev to registered handlers, then the ECS bridge. It walks
// a snapshot so handlers may register or remove callbacks; a handler removed
// during dispatch is not called afterwards.
func (k *Keyboard) dispatch(ev WordEvent) {
	for _, h := range slices.Clone(k.handlers.word) {
		if k.handlers.registered(h.id) {
			h.fn(ev)
		}
	}
	if k.store != nil {
		k.store.EmitEvent(ev)
	}
}

func (k *Keyboard) emitPartial(word string) {
	k.fireWordEvent(WordPartial, word)
	if k.listener == nil {
		k.diagnose(Diagnostic{Kind: DiagDroppedWord, Word: word, Index: -1})
		return
	}
	k.listener.OnPartialWord(word)
}

func (k *Keyboard) emitEntered(word string, indices []int, at Point) {
	ev := WordEvent{Kind: WordEntered, Word: word, Index: -1, Indices: indices, Pointer: at}
	if n := len(indices); n > 0 {
		ev.Index = indices[n-1]
	}
	k.dispatch(ev)
	if k.listener == nil {
		k.diagnose(Diagnostic{Kind: DiagDroppedWord, Word: word, Index: -1})
		return
	}
	k.listener.OnWordEntered(word)
}
