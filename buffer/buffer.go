package buffer

import (
	"strings"

	"github.com/iw2rmb/clozify/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 1000; negative disables undo
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
//
// Version changes on every effective mutation (text, cursor or selection).
// TextVersion changes only when the text does.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange *Change
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

// LineCount returns the number of logical lines (always >= 1).
func (b *Buffer) LineCount() int { return len(b.lines) }

// LineText returns the text of row, or "" when row is out of range.
func (b *Buffer) LineText(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SelectionOrCursor returns the active selection, or the collapsed range at
// the cursor when nothing is selected.
func (b *Buffer) SelectionOrCursor() Range {
	if r, ok := b.Selection(); ok {
		return r
	}
	return Range{Start: b.cursor, End: b.cursor}
}

// SetSelection selects r and moves the cursor to r.End. Empty ranges clear
// the selection.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	if clamped.Start == clamped.End {
		next = selectionState{}
	}

	prevRange, prevOK := b.Selection()
	nextRange, nextOK := Range{}, next.active
	if nextOK {
		nextRange = NormalizeRange(clamped)
	}
	nextCursor := clamped.End

	b.sel = next
	if prevOK == nextOK && (!prevOK || prevRange == nextRange) && nextCursor == b.cursor {
		return
	}
	b.cursor = nextCursor
	b.version++
}

func (b *Buffer) ClearSelection() {
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	b.sel = selectionState{}
	b.version++
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
