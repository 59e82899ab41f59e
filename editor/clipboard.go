package editor

// Clipboard connects copy, cut and paste to a host clipboard. Errors are
// swallowed so a broken clipboard never blocks editing.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}

// Register is an in-process Clipboard for terminals without a system
// clipboard bridge. It keeps the last copied text.
type Register struct {
	text string
}

func (r *Register) ReadText() (string, error) { return r.text, nil }

func (r *Register) WriteText(s string) error {
	r.text = s
	return nil
}
