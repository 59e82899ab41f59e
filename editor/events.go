package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/clozify/buffer"
)

type ChangeEvent struct {
	Version     uint64
	TextChanged bool
	Cursor      buffer.Pos
	Selection   struct {
		Range  buffer.Range
		Active bool
	}

	// Change is the buffer's last text change. Set only when TextChanged.
	Change buffer.Change

	// Full text; hosts can diff if needed.
	Text string
}

// InputKind names the programmatic edit behind an InputMsg.
type InputKind uint8

const (
	InputClozify InputKind = iota
	InputUnclozify
)

func (k InputKind) String() string {
	switch k {
	case InputClozify:
		return "clozify"
	case InputUnclozify:
		return "unclozify"
	default:
		return "unknown"
	}
}

// InputMsg is delivered to the host program after a programmatic edit so
// that models bound to the editor observe it the same way they observe
// typing.
type InputMsg struct {
	Kind  InputKind
	Event ChangeEvent
}

func buildChangeEvent(b *buffer.Buffer, textChanged bool) ChangeEvent {
	ev := ChangeEvent{
		Version:     b.Version(),
		TextChanged: textChanged,
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if textChanged {
		ev.Change, _ = b.LastChange()
	}
	return ev
}

func inputCmd(kind InputKind, ev ChangeEvent) tea.Cmd {
	return func() tea.Msg { return InputMsg{Kind: kind, Event: ev} }
}
