package cloze

// Field is an editable text control.
//
// SetText is the only way Clozify writes content back. Implementations must
// make the write visible to every observer bound to the control, not just to
// later Text calls.
type Field interface {
	Text() string
	SetText(s string)
}

// Selectable is implemented by fields that expose a selection.
//
// SelectionOffsets returns rune offsets with start <= end. ok is false when
// the control has no selection capability at all; an empty selection is
// reported as start == end with ok true.
type Selectable interface {
	SelectionOffsets() (start, end int, ok bool)
	CollapseSelection(offset int)
}

// Notifier is implemented by fields that broadcast an input notification
// after a programmatic change.
type Notifier interface {
	NotifyInput()
}

// Clozify wraps the selection of f in cloze markers and reports whether f was
// changed. Fields without a selection are left untouched.
func Clozify(f Field, opt Options) bool {
	if f == nil {
		return false
	}
	sel, ok := f.(Selectable)
	if !ok {
		return false
	}
	start, end, ok := sel.SelectionOffsets()
	if !ok {
		return false
	}

	res := Transform(f.Text(), start, end, opt)
	f.SetText(res.Text)
	sel.CollapseSelection(res.Cursor)

	if n, ok := f.(Notifier); ok {
		n.NotifyInput()
	}
	return true
}
