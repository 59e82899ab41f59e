// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The component handles key input, viewport scrolling, grapheme-aware
// rendering and change events. Its KeyMap.Clozify binding (alt+Z, the
// terminal form of shift+meta+z) wraps the selection in cloze markers via the
// cloze package.
package editor
