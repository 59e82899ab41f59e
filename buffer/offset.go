package buffer

import (
	"unicode/utf8"

	"github.com/iw2rmb/clozify/internal/grapheme"
)

type OffsetClampMode uint8

const (
	// OffsetError rejects offsets and positions outside the document.
	OffsetError OffsetClampMode = iota
	// OffsetClamp pulls them into document bounds.
	OffsetClamp
)

// Rune offsets count '\n' between lines as one rune.

// PosFromRuneOffset maps a flat rune offset to a position. Offsets that fall
// inside a multi-rune grapheme cluster are rejected.
func (b *Buffer) PosFromRuneOffset(off int, mode OffsetClampMode) (Pos, bool) {
	off, ok := clampOffset(off, b.docRuneLen(), mode)
	if !ok {
		return Pos{}, false
	}
	return b.runeOffsetToPos(off)
}

// RuneOffsetFromPos maps a position to a flat rune offset.
func (b *Buffer) RuneOffsetFromPos(pos Pos, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if b.clampPos(pos) != pos {
			return 0, false
		}
	case OffsetClamp:
		pos = b.clampPos(pos)
	default:
		return 0, false
	}
	return b.posToRuneOffset(pos), true
}

// SelectionRuneOffsets returns the selection (or the collapsed cursor) as
// rune offsets with start <= end.
func (b *Buffer) SelectionRuneOffsets() (start, end int) {
	r := b.SelectionOrCursor()
	return b.posToRuneOffset(r.Start), b.posToRuneOffset(r.End)
}

// SetCursorRuneOffset moves the cursor to off and clears the selection.
// It reports false, leaving the buffer untouched, when off is not a cluster
// boundary.
func (b *Buffer) SetCursorRuneOffset(off int) bool {
	p, ok := b.PosFromRuneOffset(off, OffsetClamp)
	if !ok {
		return false
	}
	b.ClearSelection()
	b.SetCursor(p)
	return true
}

// PosAtOrAfterRuneOffset maps off to the first cluster boundary at or after
// it, clamped to the document. An offset that splits a cluster lands after
// that cluster.
func (b *Buffer) PosAtOrAfterRuneOffset(off int) Pos {
	off = clampInt(off, 0, b.docRuneLen())
	cur := 0
	for row, line := range b.lines {
		if off <= cur {
			return Pos{Row: row}
		}
		for col, cluster := range line {
			cur += utf8.RuneCountInString(cluster)
			if off <= cur {
				return Pos{Row: row, GraphemeCol: col + 1}
			}
		}
		cur++
	}
	return b.docEdge(true)
}

func clampOffset(off, max int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > max {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, max), true
	default:
		return 0, false
	}
}

func (b *Buffer) docRuneLen() int {
	total := 0
	for _, line := range b.lines {
		total += grapheme.RuneLen(line)
	}
	return total + len(b.lines) - 1
}

func (b *Buffer) runeOffsetToPos(off int) (Pos, bool) {
	cur := 0

	for row, line := range b.lines {
		col := 0
		if off == cur {
			return Pos{Row: row, GraphemeCol: col}, true
		}

		for _, cluster := range line {
			next := cur + utf8.RuneCountInString(cluster)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			col++
			if off == cur {
				return Pos{Row: row, GraphemeCol: col}, true
			}
		}

		if row < len(b.lines)-1 {
			cur++
		}
	}

	return Pos{}, false
}

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off := 0
	for row := 0; row < pos.Row; row++ {
		off += grapheme.RuneLen(b.lines[row]) + 1
	}
	return off + grapheme.RuneLen(b.lines[pos.Row][:pos.GraphemeCol])
}
