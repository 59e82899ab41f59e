package editor

import (
	"fmt"
	"strings"
)

func gutterDigits(lineCount int) int {
	return max(len(fmt.Sprint(lineCount)), 1)
}

// renderGutter writes the right-aligned line number and the separator.
func (m *Model) renderGutter(sb *strings.Builder, row, digits int) {
	numStyle := m.cfg.Style.LineNum
	if m.focused && row == m.buf.Cursor().Row {
		numStyle = m.cfg.Style.LineNumActive
	}
	sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
	sb.WriteString(m.cfg.Style.Gutter.Render(" "))
}
