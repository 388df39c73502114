package engine

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// FuzzyMatch reports whether the text matches any of the keywords. Each
// keyword is first checked as a substring of the normalized text; failing
// that, 1-, 2- and 3-word n-grams of the input are compared by edit
// distance with a tolerance scaled to the keyword length: exact for
// keywords of up to 4 characters, distance 1 up to 7, distance 2 beyond.
// The length scaling keeps short Czech words from matching unrelated short
// strings while still absorbing inflected endings and typos.
func FuzzyMatch(text string, keywords []string) bool {
	n := Normalize(text)
	ws := strings.Fields(n)

	grams := make([]string, 0, 3*len(ws))
	grams = append(grams, ws...)
	for i := 0; i+1 < len(ws); i++ {
		grams = append(grams, ws[i]+" "+ws[i+1])
	}
	for i := 0; i+2 < len(ws); i++ {
		grams = append(grams, ws[i]+" "+ws[i+1]+" "+ws[i+2])
	}

	for _, kw := range keywords {
		nkw := Normalize(kw)
		if strings.Contains(n, nkw) {
			return true
		}

		maxDist := 2
		switch {
		case len(nkw) <= 4:
			maxDist = 0
		case len(nkw) <= 7:
			maxDist = 1
		}
		for _, g := range grams {
			if levenshtein.ComputeDistance(g, nkw) <= maxDist {
				return true
			}
		}
	}
	return false
}

// IsDontCare reports whether the text is an "it doesn't matter" style
// answer. Which slot it applies to depends on what the assistant last
// asked about, so the interpretation is left to the caller.
func IsDontCare(text string) bool {
	return FuzzyMatch(text, dontCareKeywords)
}
