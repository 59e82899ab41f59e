package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Cloze ClozeStyle
}

// ClozeStyle is used by ClozeHighlighter.
type ClozeStyle struct {
	// Marker styles "[[{n]]" and "[[}]]".
	Marker lipgloss.Style
	// Answer styles the hidden text between an opening and a closing marker
	// on the same line.
	Answer lipgloss.Style
}

// DefaultStyle dims markers so the note reads as prose, and underlines
// answers.
func DefaultStyle() Style {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        dim,
		LineNum:       dim,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Cloze: ClozeStyle{
			Marker: lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Faint(true),
			Answer: lipgloss.NewStyle().Underline(true),
		},
	}
}
