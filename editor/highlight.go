package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/clozify/cloze"
	"github.com/iw2rmb/clozify/internal/grapheme"
)

type HighlightSpan struct {
	// StartCol and EndCol are grapheme columns in the line, half-open
	// [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string

	// CursorCol is the grapheme column of the cursor on this row; otherwise -1.
	CursorCol int
	HasCursor bool
}

// Highlighter styles spans of a line. A returned error drops the
// highlights for that line only.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// ClozeHighlighter styles cloze markers and the answers they enclose.
type ClozeHighlighter struct {
	Style ClozeStyle
}

func (h ClozeHighlighter) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	markers := cloze.Markers(ctx.Text)
	if len(markers) == 0 {
		return nil, nil
	}

	toCol := runeToGraphemeCols(grapheme.Split(ctx.Text))
	spans := make([]HighlightSpan, 0, 2*len(markers))
	openEnd := -1
	for _, mk := range markers {
		start, end := toCol[mk.Start], toCol[mk.End]
		switch {
		case mk.Kind == cloze.MarkerOpen:
			openEnd = end
		case openEnd >= 0 && start > openEnd:
			spans = append(spans, HighlightSpan{StartCol: openEnd, EndCol: start, Style: h.Style.Answer})
			openEnd = -1
		default:
			openEnd = -1
		}
		spans = append(spans, HighlightSpan{StartCol: start, EndCol: end, Style: h.Style.Marker})
	}
	return spans, nil
}

// runeToGraphemeCols maps each rune offset (0..runeLen) to the grapheme
// column that contains it.
func runeToGraphemeCols(clusters []string) []int {
	out := make([]int, 0, len(clusters)+1)
	for col, g := range clusters {
		for range g {
			out = append(out, col)
		}
	}
	return append(out, len(clusters))
}

func (m *Model) highlightForLine(row int, line string) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	cursor := m.buf.Cursor()
	ctx := LineContext{Row: row, Text: line, CursorCol: -1}
	if cursor.Row == row {
		ctx.CursorCol = cursor.GraphemeCol
		ctx.HasCursor = true
	}

	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil || len(spans) == 0 {
		return nil
	}
	sort.SliceStable(spans, func(i, j int) bool { return spans[i].StartCol < spans[j].StartCol })
	return spans
}

func spanStyleAt(spans []HighlightSpan, col int) (lipgloss.Style, bool) {
	for _, s := range spans {
		if s.StartCol > col {
			break
		}
		if col < s.EndCol {
			return s.Style, true
		}
	}
	return lipgloss.Style{}, false
}
