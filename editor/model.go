package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/clozify/buffer"
	"github.com/iw2rmb/clozify/cloze"
)

// Model is a Bubble Tea component that renders and interacts with a buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Cloze == nil {
		opt := cloze.DefaultOptions()
		cfg.Cloze = &opt
	}
	if cfg.Highlighter == nil {
		cfg.Highlighter = ClozeHighlighter{Style: cfg.Style.Cloze}
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)

	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		// Rebuild content in case the host mutated the buffer outside of the editor.
		m.syncFromBuffer()
		// Don't force-follow cursor here; allow manual scrolling via mouse wheel.
		return m, cmd
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}

	// Hosts may also drive edits by mutating the buffer directly.
	if m.syncFromBuffer() {
		m.followCursor()
	}
	return m, cmd
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer re-renders after buffer changes and emits OnChange once per
// observed version bump.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	cur := m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	textChanged := m.buf.TextVersion() != m.lastTextVersion

	m.lastBufVersion = ver
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = cur
	m.rebuildContent()

	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, textChanged))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.buf == nil {
		return
	}
	cur := m.buf.Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}

	y := m.viewport.YOffset
	if cur.Row < y {
		m.viewport.SetYOffset(cur.Row)
		return
	}
	if cur.Row >= y+h {
		m.viewport.SetYOffset(cur.Row - h + 1)
	}
}
