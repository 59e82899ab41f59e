package buffer

import (
	"github.com/iw2rmb/clozify/cloze"
	"github.com/iw2rmb/clozify/internal/grapheme"
)

// MoveUnit selects the granularity of a cursor move.
type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	// MoveWord stops at word edges and steps over a whole cloze marker.
	MoveWord
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

// Move describes a cursor motion. Extend grows the selection from the current
// anchor instead of clearing it.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

func (b *Buffer) Move(m Move) {
	from := b.cursor
	to := b.clampPos(b.target(from, m))

	sel := selectionState{}
	if m.Extend {
		anchor := from
		if b.sel.active && b.sel.anchor != b.sel.end {
			anchor = b.sel.anchor
		}
		if anchor != to {
			sel = selectionState{active: true, anchor: anchor, end: to}
		}
	}

	if from == to && sameSelection(b.sel, sel) {
		return
	}
	b.cursor = to
	b.sel = sel
	b.version++
}

func sameSelection(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func (b *Buffer) target(p Pos, m Move) Pos {
	line := b.lines[p.Row]
	last := len(b.lines) - 1

	switch m.Dir {
	case DirUp, DirDown:
		if m.Unit == MoveDoc {
			return b.docEdge(m.Dir == DirDown)
		}
		return b.vertical(p, m.Dir == DirDown)
	case DirHome:
		if m.Unit == MoveDoc {
			return Pos{}
		}
		return Pos{Row: p.Row}
	case DirEnd:
		if m.Unit == MoveDoc {
			return b.docEdge(true)
		}
		return Pos{Row: p.Row, GraphemeCol: len(line)}
	}

	left := m.Dir == DirLeft
	switch m.Unit {
	case MoveWord:
		if left {
			return Pos{Row: p.Row, GraphemeCol: prevWordBoundary(line, p.GraphemeCol)}
		}
		return Pos{Row: p.Row, GraphemeCol: nextWordBoundary(line, p.GraphemeCol)}
	case MoveGrapheme:
		switch {
		case left && p.GraphemeCol > 0:
			return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol - 1}
		case left && p.Row > 0:
			return Pos{Row: p.Row - 1, GraphemeCol: len(b.lines[p.Row-1])}
		case !left && p.GraphemeCol < len(line):
			return Pos{Row: p.Row, GraphemeCol: p.GraphemeCol + 1}
		case !left && p.Row < last:
			return Pos{Row: p.Row + 1}
		}
	}
	return p
}

func (b *Buffer) vertical(p Pos, down bool) Pos {
	row := p.Row - 1
	if down {
		row = p.Row + 1
	}
	if row < 0 || row >= len(b.lines) {
		return p
	}
	return Pos{Row: row, GraphemeCol: min(p.GraphemeCol, len(b.lines[row]))}
}

func (b *Buffer) docEdge(end bool) Pos {
	if !end {
		return Pos{}
	}
	last := len(b.lines) - 1
	return Pos{Row: last, GraphemeCol: len(b.lines[last])}
}

// colSpan is a half-open grapheme column range within one line.
type colSpan struct{ start, end int }

// markerColumns maps the cloze markers of line to grapheme columns. Markers
// whose edges fall inside a cluster are skipped.
func markerColumns(line []string) []colSpan {
	spans := cloze.Markers(grapheme.Join(line))
	if len(spans) == 0 {
		return nil
	}

	out := make([]colSpan, 0, len(spans))
	col, off := 0, 0
	advance := func(to int) {
		for col < len(line) && off < to {
			off += grapheme.RuneLen(line[col : col+1])
			col++
		}
	}
	for _, sp := range spans {
		advance(sp.Start)
		if off != sp.Start {
			continue
		}
		start := col
		advance(sp.End)
		if off != sp.End {
			continue
		}
		out = append(out, colSpan{start: start, end: col})
	}
	return out
}

// Word boundaries skip whitespace, then either one whole cloze marker or one
// run of same-class clusters. Runs stop at marker edges, so "[[{1]]Paris"
// takes two moves. Newline is a hard boundary.
func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.Classify(line[i]) == grapheme.ClassSpace {
		i++
	}
	if i == len(line) {
		return i
	}

	markers := markerColumns(line)
	for _, m := range markers {
		if m.start <= i && i < m.end {
			return m.end
		}
	}
	class := grapheme.Classify(line[i])
	for i++; i < len(line) && grapheme.Classify(line[i]) == class; i++ {
		if startsMarker(markers, i) {
			break
		}
	}
	return i
}

func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.Classify(line[i-1]) == grapheme.ClassSpace {
		i--
	}
	if i == 0 {
		return 0
	}

	markers := markerColumns(line)
	for _, m := range markers {
		if m.start < i && i <= m.end {
			return m.start
		}
	}
	class := grapheme.Classify(line[i-1])
	for i--; i > 0 && grapheme.Classify(line[i-1]) == class; i-- {
		if endsMarker(markers, i) {
			break
		}
	}
	return i
}

func startsMarker(markers []colSpan, col int) bool {
	for _, m := range markers {
		if m.start == col {
			return true
		}
	}
	return false
}

func endsMarker(markers []colSpan, col int) bool {
	for _, m := range markers {
		if m.end == col {
			return true
		}
	}
	return false
}
