// Package cloze wraps a text selection in cloze-deletion markers.
//
// An opening marker is "[[{" followed by an optional decimal identifier and
// "]]"; the closing marker is "[[}]]". Offsets are 0-based rune offsets into
// the field content and selections are half-open: [start, end).
//
// Transform is the pure core. Clozify drives it against a Field, which is how
// editors plug in their own content setter and change notification.
package cloze
