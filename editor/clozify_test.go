package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/clozify/buffer"
	"github.com/iw2rmb/clozify/cloze"
)

var clozifyKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Z"), Alt: true}

func TestClozify_ShortcutWrapsSelection(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text:     "The capital of France is Paris.",
		OnChange: func(ev ChangeEvent) { events = append(events, ev) },
	})
	m.Buffer().SetSelection(buffer.Range{
		Start: buffer.Pos{GraphemeCol: 25},
		End:   buffer.Pos{GraphemeCol: 30},
	})

	m, cmd := m.Update(clozifyKey)

	want := "The capital of France is [[{1]]Paris[[}]].#ankify"
	if got := m.Buffer().Text(); got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	wantCursor := buffer.Pos{GraphemeCol: 30 + len("[[{1]]") + len("[[}]]")}
	if got := m.Buffer().Cursor(); got != wantCursor {
		t.Fatalf("cursor: got %v, want %v", got, wantCursor)
	}
	if _, ok := m.Buffer().Selection(); ok {
		t.Fatalf("expected collapsed selection")
	}

	if len(events) != 1 {
		t.Fatalf("OnChange events: got %d, want 1", len(events))
	}
	if !events[0].TextChanged || events[0].Text != want {
		t.Fatalf("event: %+v", events[0])
	}

	if cmd == nil {
		t.Fatalf("expected an input notification command")
	}
	msg, ok := cmd().(InputMsg)
	if !ok {
		t.Fatalf("command produced %T, want InputMsg", cmd())
	}
	if msg.Event.Text != want || msg.Event.Cursor != wantCursor {
		t.Fatalf("input msg event: %+v", msg.Event)
	}
	if msg.Kind != InputClozify {
		t.Fatalf("input kind: got %v, want clozify", msg.Kind)
	}
	ch := msg.Event.Change
	if ch.Source != buffer.ChangeSourceHost {
		t.Fatalf("change source: got %v, want host", ch.Source)
	}
	if got, want := ch.RuneDelta(), len("[[{1]][[}]]#ankify"); got != want {
		t.Fatalf("change delta: got %d, want %d", got, want)
	}
}

func TestClozify_EmptySelectionInsertsEmptyCloze(t *testing.T) {
	m := New(Config{Text: "ab", Cloze: &cloze.Options{AssignID: true}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(clozifyKey)

	if got, want := m.Buffer().Text(), "a[[{1]][[}]]b"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{GraphemeCol: 12}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestClozify_IncreasingIDsAndSingleTag(t *testing.T) {
	m := New(Config{Text: "one two"})

	m.Buffer().SetSelection(buffer.Range{End: buffer.Pos{GraphemeCol: 3}})
	m, _ = m.Update(clozifyKey)

	// "[[{1]]one[[}]] two#ankify": select "two".
	m.Buffer().SetSelection(buffer.Range{
		Start: buffer.Pos{GraphemeCol: 15},
		End:   buffer.Pos{GraphemeCol: 18},
	})
	m, _ = m.Update(clozifyKey)

	if got, want := m.Buffer().Text(), "[[{1]]one[[}]] [[{2]]two[[}]]#ankify"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestClozify_MultilineSelection(t *testing.T) {
	m := New(Config{Text: "ab\ncd", Cloze: &cloze.Options{}})
	m.Buffer().SetSelection(buffer.Range{
		Start: buffer.Pos{Row: 0, GraphemeCol: 1},
		End:   buffer.Pos{Row: 1, GraphemeCol: 1},
	})
	m, _ = m.Update(clozifyKey)

	if got, want := m.Buffer().Text(), "a[[{]]b\nc[[}]]d"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, GraphemeCol: 6}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
}

func TestClozify_ReadOnlyIsNoOp(t *testing.T) {
	events := 0
	m := New(Config{
		Text:     "Paris",
		ReadOnly: true,
		OnChange: func(ChangeEvent) { events++ },
	})
	m.Buffer().SetSelection(buffer.Range{End: buffer.Pos{GraphemeCol: 5}})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}) // flush the selection event
	events = 0

	m, cmd := m.Update(clozifyKey)
	if got := m.Buffer().Text(); got != "Paris" {
		t.Fatalf("text: got %q, want unchanged", got)
	}
	if cmd != nil {
		t.Fatalf("expected no input notification")
	}
	if events != 0 {
		t.Fatalf("OnChange events: got %d, want 0", events)
	}
	if _, ok := m.Field().(cloze.Selectable); ok {
		t.Fatalf("read-only field must not expose a selection")
	}
}

func TestClozify_OtherKeysDoNotTrigger(t *testing.T) {
	m := New(Config{Text: ""})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z"), Alt: true})
	if got := m.Buffer().Text(); got != "" {
		t.Fatalf("alt+z: got %q, want empty", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Z")})
	if got := m.Buffer().Text(); got != "Z" {
		t.Fatalf("shift+z: got %q, want %q", got, "Z")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Z"), Alt: true, Paste: true})
	if got := m.Buffer().Text(); got != "ZZ" {
		t.Fatalf("pasted Z: got %q, want %q", got, "ZZ")
	}
}

func TestClozify_SingleUndoStep(t *testing.T) {
	m := New(Config{Text: "Paris"})
	m.Buffer().SetSelection(buffer.Range{End: buffer.Pos{GraphemeCol: 5}})
	m, _ = m.Update(clozifyKey)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got := m.Buffer().Text(); got != "Paris" {
		t.Fatalf("text after undo: got %q, want %q", got, "Paris")
	}
	if _, ok := m.Buffer().Selection(); !ok {
		t.Fatalf("expected selection restored by undo")
	}
}

func TestClozify_CustomTagAndSeparator(t *testing.T) {
	m := New(Config{
		Text:  "x",
		Cloze: &cloze.Options{Tag: "#card", Separator: " ", AssignID: true},
	})
	m.Buffer().SetSelection(buffer.Range{End: buffer.Pos{GraphemeCol: 1}})
	m, _ = m.Clozify()

	if got, want := m.Buffer().Text(), "[[{1]]x[[}]] #card"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestClozify_CursorSnapsPastMergedCombiningMark(t *testing.T) {
	// The closing marker lands before a combining mark that starts row 1,
	// so "]" and the mark become one cluster.
	m := New(Config{Text: "a\n\u0301x", Cloze: &cloze.Options{}})
	m.Buffer().SetSelection(buffer.Range{End: buffer.Pos{Row: 1}})
	m, _ = m.Update(clozifyKey)

	if got, want := m.Buffer().Text(), "[[{]]a\n[[}]]\u0301x"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{Row: 1, GraphemeCol: 5}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if _, ok := m.Buffer().Selection(); ok {
		t.Fatalf("expected collapsed selection")
	}
}

var unclozifyKey = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("U"), Alt: true}

func TestUnclozify_RemovesAllMarkersWithoutSelection(t *testing.T) {
	m := New(Config{Text: "[[{1]]one[[}]] [[{2]]two[[}]]#ankify"})
	m, cmd := m.Update(unclozifyKey)

	if got, want := m.Buffer().Text(), "one two#ankify"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := m.Buffer().Cursor(), (buffer.Pos{}); got != want {
		t.Fatalf("cursor: got %v, want %v", got, want)
	}
	if cmd == nil {
		t.Fatalf("expected an input notification command")
	}
	msg := cmd().(InputMsg)
	if msg.Kind != InputUnclozify {
		t.Fatalf("input kind: got %v, want unclozify", msg.Kind)
	}
	if got, want := msg.Event.Change.RuneDelta(), -4*5-2; got != want {
		t.Fatalf("change delta: got %d, want %d", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Buffer().Text(), "[[{1]]one[[}]] [[{2]]two[[}]]#ankify"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
}

func TestUnclozify_OnlyInsideSelection(t *testing.T) {
	m := New(Config{Text: "[[{1]]one[[}]] [[{2]]two[[}]]"})
	m.Buffer().SetSelection(buffer.Range{
		Start: buffer.Pos{GraphemeCol: 15},
		End:   buffer.Pos{GraphemeCol: 29},
	})
	m, _ = m.Unclozify()

	if got, want := m.Buffer().Text(), "[[{1]]one[[}]] two"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestUnclozify_NoMarkersIsNoOp(t *testing.T) {
	events := 0
	m := New(Config{Text: "plain", OnChange: func(ChangeEvent) { events++ }})
	m, cmd := m.Unclozify()
	if cmd != nil || events != 0 || m.Buffer().CanUndo() {
		t.Fatalf("no-op unclozify: cmd=%v events=%d", cmd != nil, events)
	}

	ro := New(Config{Text: "[[{1]]x[[}]]", ReadOnly: true})
	ro, _ = ro.Unclozify()
	if got := ro.Buffer().Text(); got != "[[{1]]x[[}]]" {
		t.Fatalf("read-only text: got %q, want unchanged", got)
	}
}
