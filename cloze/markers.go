package cloze

import (
	"regexp"
	"strconv"
	"unicode/utf8"
)

const (
	openPrefix = "[[{"
	openSuffix = "]]"

	// CloseMarker terminates a cloze span.
	CloseMarker = "[[}]]"

	// DefaultTag is appended to content that is not tagged yet.
	DefaultTag = "#ankify"
)

var (
	// Matches exactly "[[{<digits>]]".
	numberedOpenRE = regexp.MustCompile(`\[\[\{(\d+)\]\]`)
	anyMarkerRE    = regexp.MustCompile(`\[\[\{\d*\]\]|\[\[\}\]\]`)
)

// OpenMarker returns the opening marker for id. Identifiers <= 0 produce the
// unnumbered marker "[[{]]".
func OpenMarker(id int) string {
	if id <= 0 {
		return openPrefix + openSuffix
	}
	return openPrefix + strconv.Itoa(id) + openSuffix
}

// ScanIDs returns the identifiers of every numbered opening marker in content,
// in document order. Identifiers that do not fit in an int are skipped.
func ScanIDs(content string) []int {
	matches := numberedOpenRE.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}
	ids := make([]int, 0, len(matches))
	for _, m := range matches {
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// NextID returns 1 when content has no numbered markers, otherwise the
// largest identifier plus one.
func NextID(content string) int {
	max := 0
	for _, id := range ScanIDs(content) {
		if id > max {
			max = id
		}
	}
	return max + 1
}

// MarkerKind distinguishes opening from closing markers.
type MarkerKind uint8

const (
	MarkerOpen MarkerKind = iota
	MarkerClose
)

// Span is a marker occurrence as half-open rune offsets [Start, End).
type Span struct {
	Start int
	End   int
	Kind  MarkerKind
}

// Markers returns every opening (numbered or not) and closing marker in
// content, in document order.
func Markers(content string) []Span {
	locs := anyMarkerRE.FindAllStringIndex(content, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(locs))
	runeOff := 0
	byteOff := 0
	for _, loc := range locs {
		runeOff += utf8.RuneCountInString(content[byteOff:loc[0]])
		n := loc[1] - loc[0] // markers are ASCII
		kind := MarkerOpen
		if content[loc[0]:loc[1]] == CloseMarker {
			kind = MarkerClose
		}
		spans = append(spans, Span{Start: runeOff, End: runeOff + n, Kind: kind})
		runeOff += n
		byteOff = loc[1]
	}
	return spans
}

// Strip removes all cloze markers and keeps the text they delimit.
func Strip(content string) string {
	return anyMarkerRE.ReplaceAllString(content, "")
}
