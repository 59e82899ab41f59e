// Package grapheme segments text into user-perceived characters with uniseg
// and classifies them for word movement.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Split returns the grapheme clusters of text, or nil for "".
func Split(text string) []string {
	var out []string
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates clusters.
func Join(clusters []string) string {
	return strings.Join(clusters, "")
}

// RuneLen returns the number of runes across clusters.
func RuneLen(clusters []string) int {
	n := 0
	for _, c := range clusters {
		n += utf8.RuneCountInString(c)
	}
	return n
}

// Class groups clusters for word movement.
type Class uint8

const (
	ClassWord Class = iota
	ClassSpace
	// ClassPunct covers brackets and symbols, so marker syntax such as
	// "[[{" and "#" never joins an adjacent word.
	ClassPunct
)

// Classify reports the class of cluster by its base rune. Combining marks
// follow their base, so "é" is a word character.
func Classify(cluster string) Class {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case cluster == "":
		return ClassSpace
	case unicode.IsSpace(r):
		return ClassSpace
	case unicode.IsPunct(r), unicode.IsSymbol(r):
		return ClassPunct
	default:
		return ClassWord
	}
}
