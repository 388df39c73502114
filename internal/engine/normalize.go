// Package engine implements the rule-based conversation engine behind the
// travel assistant: text normalization, fuzzy keyword matching, trip slot
// extraction, conversation state tracking and reply building.
package engine

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes to NFD and drops combining marks, turning
// "Špindlerův Mlýn" into "spindleruv mlyn" once lowercased.
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// Normalize lowercases the text, strips diacritics and trims whitespace.
// It is total: any input, including the empty string, yields a result.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	folded, _, err := transform.String(foldDiacritics, lowered)
	if err != nil {
		folded = lowered
	}
	return strings.TrimSpace(folded)
}

// Words splits the normalized text into tokens, dropping empties.
func Words(text string) []string {
	return strings.Fields(Normalize(text))
}
