// Package host runs a [rotary.Keyboard] inside an Ebitengine window.
//
// [Run] opens the window, polls the mouse or the first touch each tick and
// turns it into PointerDown, PointerMove and PointerUp calls, draws the
// keyboard with the render package, and optionally hot-reloads a config
// file. The pieces are exported separately for games that own their own
// loop: [Input] for polling, [ConfigWatcher] for reloads and [FPSOverlay]
// for a frame counter.
package host
