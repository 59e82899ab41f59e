package editor

import "github.com/iw2rmb/clozify/cloze"

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	// Highlighter styles spans of each line. Nil means a ClozeHighlighter
	// using Style.Cloze.
	Highlighter Highlighter

	// KeyMap defaults to DefaultKeyMap when left zero.
	KeyMap KeyMap

	// ReadOnly disables every mutation, including clozify.
	ReadOnly bool

	// Cloze configures the Clozify binding. Nil means cloze.DefaultOptions.
	Cloze *cloze.Options

	Clipboard Clipboard

	// OnChange is called once per Update (or Clozify call) that changed the
	// buffer version.
	OnChange func(ChangeEvent)

	// Forwarded to buffer.Options.
	HistoryLimit int
}
