package buffer

import "unicode/utf8"

// ChangeSource tells observers who produced a text change.
type ChangeSource uint8

const (
	// ChangeSourceLocal is typing, deleting, pasting and Apply.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceHost is a whole-document write through ReplaceAll, such as
	// a clozify.
	ChangeSourceHost
	// ChangeSourceHistory is Undo or Redo.
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceHost:
		return "host"
	case ChangeSourceHistory:
		return "history"
	default:
		return "unknown"
	}
}

// AppliedEdit is one replacement as it landed in the document.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change describes the most recent text mutation.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorAfter   Pos
	Edits         []AppliedEdit
}

// RuneDelta is the net number of runes the change added. A clozify reports
// the length of both markers plus any appended tag.
func (c Change) RuneDelta() int {
	d := 0
	for _, e := range c.Edits {
		d += utf8.RuneCountInString(e.InsertText) - utf8.RuneCountInString(e.DeletedText)
	}
	return d
}

// LastChange returns the most recent text change, if any.
func (b *Buffer) LastChange() (Change, bool) {
	if b.lastChange == nil {
		return Change{}, false
	}
	out := *b.lastChange
	out.Edits = append([]AppliedEdit(nil), out.Edits...)
	return out, true
}

// commitChange records edits made since versionBefore. Cursor-only updates
// leave the previous record in place.
func (b *Buffer) commitChange(source ChangeSource, versionBefore uint64, edits []AppliedEdit) {
	if len(edits) == 0 || b.version == versionBefore {
		return
	}
	b.lastChange = &Change{
		Source:        source,
		VersionBefore: versionBefore,
		VersionAfter:  b.version,
		CursorAfter:   b.cursor,
		Edits:         edits,
	}
}

// wholeDocumentEdit describes a snapshot swap as one replacement.
func wholeDocumentEdit(before, after string) (AppliedEdit, bool) {
	if before == after {
		return AppliedEdit{}, false
	}
	return AppliedEdit{
		RangeBefore: documentRange(before),
		RangeAfter:  documentRange(after),
		InsertText:  after,
		DeletedText: before,
	}, true
}

func documentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(lines[last])}}
}
