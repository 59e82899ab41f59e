// Package buffer implements the document model behind an editable field.
//
// Text is stored as lines of grapheme clusters. Coordinates are 0-based
// (Row, GraphemeCol); ranges are half-open: [Start, End). Callers that think
// in flat character offsets (for example the cloze package) convert with
// RuneOffsetFromPos and PosFromRuneOffset.
package buffer
