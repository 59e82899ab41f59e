package buffer

// Apply runs edits in order as one undoable change and reports whether the
// text changed.
//
// Each range is read against the document left by the previous edit, so a
// caller removing several spans lists them from last to first. Ranges are
// clamped. The cursor ends after the last effective edit and the selection
// is cleared.
func (b *Buffer) Apply(edits ...TextEdit) bool {
	if len(edits) == 0 {
		return false
	}

	prev := b.snapshot()
	before := b.version
	cursor := b.cursor

	var applied []AppliedEdit
	for _, e := range edits {
		next, edit, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		cursor = next
		applied = append(applied, edit)
	}
	if len(applied) == 0 {
		return false
	}

	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(ChangeSourceLocal, before, applied)
	return true
}
