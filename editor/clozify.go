package editor

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/clozify/buffer"
	"github.com/iw2rmb/clozify/cloze"
)

// Clozify wraps the current selection (or an empty range at the cursor) in
// cloze markers using Config.Cloze. When the buffer changed, OnChange fires
// and the returned command delivers an InputMsg to the host program.
func (m Model) Clozify() (Model, tea.Cmd) {
	if m.buf == nil {
		return m, nil
	}

	notified := false
	if !cloze.Clozify(m.field(func() { notified = true }), *m.cfg.Cloze) {
		return m, nil
	}
	if m.syncFromBuffer() {
		m.followCursor()
	}
	if !notified {
		return m, nil
	}
	return m, inputCmd(InputClozify, buildChangeEvent(m.buf, true))
}

// Unclozify removes the cloze markers that lie wholly inside the selection,
// or every marker when nothing is selected, leaving the hidden text in
// place. The removal is one undoable change and the cursor lands where the
// first removed marker began. Tags are kept.
func (m Model) Unclozify() (Model, tea.Cmd) {
	if m.buf == nil || m.cfg.ReadOnly {
		return m, nil
	}

	text := m.buf.Text()
	lo, hi := 0, utf8.RuneCountInString(text)
	if _, ok := m.buf.Selection(); ok {
		lo, hi = m.buf.SelectionRuneOffsets()
	}

	spans := cloze.Markers(text)
	edits := make([]buffer.TextEdit, 0, len(spans))
	for i := len(spans) - 1; i >= 0; i-- {
		sp := spans[i]
		if sp.Start < lo || sp.End > hi {
			continue
		}
		start, okStart := m.buf.PosFromRuneOffset(sp.Start, buffer.OffsetError)
		end, okEnd := m.buf.PosFromRuneOffset(sp.End, buffer.OffsetError)
		if !okStart || !okEnd {
			continue
		}
		edits = append(edits, buffer.TextEdit{Range: buffer.Range{Start: start, End: end}})
	}

	if !m.buf.Apply(edits...) {
		return m, nil
	}
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, inputCmd(InputUnclozify, buildChangeEvent(m.buf, true))
}
