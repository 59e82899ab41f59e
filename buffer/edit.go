package buffer

import (
	"strings"

	"github.com/iw2rmb/clozify/internal/grapheme"
)

// InsertText inserts text at the cursor, or replaces the active selection.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		b.DeleteSelection()
		return
	}
	b.editRange(b.SelectionOrCursor(), s, ChangeSourceLocal)
}

// InsertNewline inserts a line break at the cursor, or replaces the active
// selection.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	switch {
	case row == 0 && col == 0:
		return
	case col > 0:
		b.editRange(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "", ChangeSourceLocal)
	default:
		// Join with previous line (delete the newline).
		prev := Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		b.editRange(Range{Start: prev, End: b.cursor}, "", ChangeSourceLocal)
	}
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}

	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	switch {
	case row == lastRow && col == len(b.lines[lastRow]):
		return
	case col < len(b.lines[row]):
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "", ChangeSourceLocal)
	default:
		// Join with next line (delete the newline).
		b.editRange(Range{Start: b.cursor, End: Pos{Row: row + 1, GraphemeCol: 0}}, "", ChangeSourceLocal)
	}
}

// DeleteSelection deletes the active selection, if any.
func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.editRange(r, "", ChangeSourceLocal)
}

// ReplaceAll swaps the whole document for text as one undoable change
// attributed to ChangeSourceHost. The cursor ends at the document end and the
// selection is cleared. It reports whether the text changed.
func (b *Buffer) ReplaceAll(text string) bool {
	lastRow := len(b.lines) - 1
	all := Range{End: Pos{Row: lastRow, GraphemeCol: len(b.lines[lastRow])}}
	return b.editRange(all, text, ChangeSourceHost)
}

// editRange performs a single-edit transaction: undo snapshot, replacement,
// version bumps and change record.
func (b *Buffer) editRange(r Range, text string, source ChangeSource) bool {
	prev := b.snapshot()
	before := b.version

	nextCursor, applied, changed := b.replaceRange(r, text)
	if !changed {
		return false
	}

	b.cursor = nextCursor
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(source, before, []AppliedEdit{applied})
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, applied AppliedEdit, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, AppliedEdit{}, false
	}

	deletedText := textForLinesRange(b.lines, r)
	if deletedText == text {
		return b.cursor, AppliedEdit{}, false
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	// Re-segment the edited lines as a whole so clusters that join across
	// the edit boundary (e.g. combining marks) stay correct.
	prefix := grapheme.Join(b.lines[startRow][:startCol])
	suffix := grapheme.Join(b.lines[endRow][endCol:])
	repl := splitLines(prefix + text + suffix)

	parts := strings.Split(text, "\n")
	lastPart := parts[len(parts)-1]
	cursorRow := startRow + len(parts) - 1
	cursorLine := lastPart
	if len(parts) == 1 {
		cursorLine = prefix + lastPart
	}
	nextCursor = Pos{Row: cursorRow, GraphemeCol: grapheme.Count(cursorLine)}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	nextCursor = b.clampPos(nextCursor)
	applied = AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: nextCursor},
		InsertText:  text,
		DeletedText: deletedText,
	}
	return nextCursor, applied, true
}

func textForLinesRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	if startRow == endRow {
		return grapheme.Join(lines[startRow][startCol:endCol])
	}

	var sb strings.Builder
	for row := startRow; row <= endRow; row++ {
		if row > startRow {
			sb.WriteByte('\n')
		}
		partStart, partEnd := 0, len(lines[row])
		if row == startRow {
			partStart = startCol
		}
		if row == endRow {
			partEnd = endCol
		}
		sb.WriteString(grapheme.Join(lines[row][partStart:partEnd]))
	}
	return sb.String()
}
