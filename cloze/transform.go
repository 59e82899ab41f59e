package cloze

import (
	"strings"
	"unicode/utf8"
)

// Options configures a clozify operation.
type Options struct {
	// Tag is appended when it does not already occur anywhere in the content.
	// An empty Tag disables tagging.
	Tag string
	// Separator is written between the content and an appended Tag.
	Separator string
	// AssignID embeds the next free numeric identifier in the opening marker.
	AssignID bool
}

// DefaultOptions returns Tag "#ankify", no separator and numbered markers.
func DefaultOptions() Options {
	return Options{Tag: DefaultTag, AssignID: true}
}

// Result is the outcome of Transform.
type Result struct {
	Text string
	// Cursor is the rune offset right after the inserted closing marker.
	Cursor int
	// ID is the assigned identifier, or 0 when AssignID was false.
	ID          int
	TagAppended bool
}

// Transform wraps content[start:end) in cloze markers.
//
// Offsets are rune offsets. They are clamped to the content and swapped when
// reversed. An empty selection yields an empty cloze at start.
func Transform(content string, start, end int, opt Options) Result {
	n := utf8.RuneCountInString(content)
	start = clampInt(start, 0, n)
	end = clampInt(end, 0, n)
	if end < start {
		start, end = end, start
	}

	id := 0
	if opt.AssignID {
		id = NextID(content)
	}
	open := OpenMarker(id)

	startByte := byteOffset(content, start)
	endByte := startByte + byteOffset(content[startByte:], end-start)

	var sb strings.Builder
	sb.Grow(len(content) + len(open) + len(CloseMarker) + len(opt.Separator) + len(opt.Tag))
	sb.WriteString(content[:startByte])
	sb.WriteString(open)
	sb.WriteString(content[startByte:endByte])
	sb.WriteString(CloseMarker)
	sb.WriteString(content[endByte:])

	tagged := false
	if opt.Tag != "" && !strings.Contains(content, opt.Tag) {
		sb.WriteString(opt.Separator)
		sb.WriteString(opt.Tag)
		tagged = true
	}

	return Result{
		Text:        sb.String(),
		Cursor:      end + len(open) + len(CloseMarker),
		ID:          id,
		TagAppended: tagged,
	}
}

// byteOffset converts a rune offset in s into a byte offset.
func byteOffset(s string, runes int) int {
	if runes <= 0 {
		return 0
	}
	i := 0
	for b := range s {
		if i == runes {
			return b
		}
		i++
	}
	return len(s)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
