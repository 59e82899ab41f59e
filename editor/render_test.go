package editor

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/go-cmp/cmp"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/clozify/buffer"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestRender_LineNumberAlignment_1To120(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 120; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("x")
	}

	m := New(Config{
		Text:         sb.String(),
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(10, 120)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 120 {
		t.Fatalf("expected 120 lines, got %d", len(lines))
	}

	digits := 3
	for i, line := range lines {
		wantPrefix := fmt.Sprintf("%*d x", digits, i+1)
		if !strings.HasPrefix(line, wantPrefix) {
			t.Fatalf("line %d prefix: got %q, want prefix %q", i+1, line, wantPrefix)
		}
	}
}

func TestRender_CursorCell(t *testing.T) {
	m := New(Config{
		Text:  "ab",
		Style: Style{Text: lipgloss.NewStyle(), Cursor: lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)},
	})

	if got, want := m.renderContent(), " a b"; got != want {
		t.Fatalf("cursor at start:\n got: %q\nwant: %q", got, want)
	}

	m.Buffer().SetCursor(buffer.Pos{GraphemeCol: 2})
	if got, want := m.renderContent(), "ab   "; got != want {
		t.Fatalf("cursor at end of line:\n got: %q\nwant: %q", got, want)
	}

	m = m.Blur()
	if got, want := m.renderContent(), "ab"; got != want {
		t.Fatalf("blurred:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ClozeMarkersUseMarkerStyle(t *testing.T) {
	m := New(Config{
		Text:  "a[[{1]]b[[}]]",
		Style: Style{Cloze: ClozeStyle{Marker: lipgloss.NewStyle().PaddingLeft(1)}},
	})
	m = m.Blur()

	// Each marker grapheme picks up the padding; plain text does not.
	got := m.renderContent()
	want := "a [ [ { 1 ] ]b [ [ } ] ]"
	if got != want {
		t.Fatalf("marker rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestRender_ClozeAnswerUsesAnswerStyle(t *testing.T) {
	m := New(Config{
		Text:  "[[{1]]ab[[}]] c",
		Style: Style{Cloze: ClozeStyle{Answer: lipgloss.NewStyle().PaddingLeft(1)}},
	})
	m = m.Blur()

	if got, want := m.renderContent(), "[[{1]] a b[[}]] c"; got != want {
		t.Fatalf("answer rendering:\n got: %q\nwant: %q", got, want)
	}
}

func TestClozeHighlighter_GraphemeColumns(t *testing.T) {
	h := ClozeHighlighter{}
	spans, err := h.HighlightLine(LineContext{Text: "e\u0301[[{2]]x[[}]]"})
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}

	var got [][2]int
	for _, s := range spans {
		got = append(got, [2]int{s.StartCol, s.EndCol})
	}
	want := [][2]int{{1, 7}, {7, 8}, {8, 13}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}

func TestClozeHighlighter_EmptyAndUnpairedMarkers(t *testing.T) {
	h := ClozeHighlighter{}
	spans, err := h.HighlightLine(LineContext{Text: "[[}]]a[[{]][[}]]b[[{3]]"})
	if err != nil {
		t.Fatalf("highlight: %v", err)
	}

	var got [][2]int
	for _, s := range spans {
		got = append(got, [2]int{s.StartCol, s.EndCol})
	}
	want := [][2]int{{0, 5}, {6, 11}, {11, 16}, {17, 23}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("spans mismatch (-want +got):\n%s", diff)
	}
}
