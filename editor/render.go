package editor

import (
	"strings"

	"github.com/iw2rmb/clozify/buffer"
	"github.com/iw2rmb/clozify/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.buf == nil {
		return ""
	}

	n := m.buf.LineCount()
	digits := 0
	if m.cfg.ShowLineNums {
		digits = gutterDigits(n)
	}
	sel, selOK := m.buf.Selection()

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			m.renderGutter(&sb, row, digits)
		}
		line := m.buf.LineText(row)
		m.renderLine(&sb, row, line, sel, selOK)
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderLine(sb *strings.Builder, row int, line string, sel buffer.Range, selOK bool) {
	st := m.cfg.Style
	cursor := m.buf.Cursor()
	spans := m.highlightForLine(row, line)
	clusters := grapheme.Split(line)

	for col, g := range clusters {
		style := st.Text
		if hs, ok := spanStyleAt(spans, col); ok {
			style = hs.Inherit(style)
		}
		pos := buffer.Pos{Row: row, GraphemeCol: col}
		if selOK && buffer.ComparePos(pos, sel.Start) >= 0 && buffer.ComparePos(pos, sel.End) < 0 {
			style = st.Selection.Inherit(style)
		}
		if m.focused && pos == cursor {
			style = st.Cursor.Inherit(style)
		}
		sb.WriteString(style.Render(g))
	}

	// Cursor at end of line renders on a blank cell.
	if m.focused && cursor.Row == row && cursor.GraphemeCol >= len(clusters) {
		sb.WriteString(st.Cursor.Inherit(st.Text).Render(" "))
	}
}
