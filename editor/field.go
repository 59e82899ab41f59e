package editor

import (
	"github.com/iw2rmb/clozify/buffer"
	"github.com/iw2rmb/clozify/cloze"
)

// Field returns the model's buffer as a cloze.Field.
//
// Writable models return a field with selection support whose SetText goes
// through buffer.ReplaceAll, so the write is one undoable change and the
// next Update reports it through OnChange. Read-only models return a field
// without selection support; cloze.Clozify leaves it untouched.
func (m Model) Field() cloze.Field {
	return m.field(nil)
}

func (m Model) field(onInput func()) cloze.Field {
	if m.cfg.ReadOnly {
		return textField{buf: m.buf}
	}
	return &bufferField{buf: m.buf, onInput: onInput}
}

type textField struct {
	buf *buffer.Buffer
}

func (f textField) Text() string { return f.buf.Text() }

// SetText ignores writes; the field is read-only.
func (f textField) SetText(string) {}

type bufferField struct {
	buf     *buffer.Buffer
	onInput func()
}

func (f *bufferField) Text() string { return f.buf.Text() }

func (f *bufferField) SetText(s string) { f.buf.ReplaceAll(s) }

func (f *bufferField) SelectionOffsets() (start, end int, ok bool) {
	start, end = f.buf.SelectionRuneOffsets()
	return start, end, true
}

func (f *bufferField) CollapseSelection(offset int) {
	if f.buf.SetCursorRuneOffset(offset) {
		return
	}
	// A marker edge merged with a following combining mark.
	f.buf.ClearSelection()
	f.buf.SetCursor(f.buf.PosAtOrAfterRuneOffset(offset))
}

func (f *bufferField) NotifyInput() {
	if f.onInput != nil {
		f.onInput()
	}
}
