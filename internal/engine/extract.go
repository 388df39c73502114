package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	peopleCountRe     = regexp.MustCompile(`(\d+)\s*(osob|lid|osoby|lidi|clov|dospel|lide)`)
	peopleForRe       = regexp.MustCompile(`pro\s+(\d+)`)
	nightsContextRe   = regexp.MustCompile(`\b(strav|penz|snidan|noc|den|dni|tydn)`)
	standaloneDigitRe = regexp.MustCompile(`^\s*(\d+)\s*$`)

	numericDateRe  = regexp.MustCompile(`\d{1,2}\.\s*\d{1,2}\.`)
	nightsStayRe   = regexp.MustCompile(`na\s+\d+\s*(noc|den|dni|dnu)`)
	weekendStayRe  = regexp.MustCompile(`na\s+vikend`)
	weekStayRe     = regexp.MustCompile(`na\s+tyden`)
	weekendRe      = regexp.MustCompile(`vikend`)
	weekendCtxRe   = regexp.MustCompile(`(v|na|behem|kolem)`)
	weekRe         = regexp.MustCompile(`tyden`)
	weekOrdinalRe  = regexp.MustCompile(`(v|na|behem|kolem|prvni|druhy|treti|posledni)`)
	segmentSplitRe = regexp.MustCompile(`(?i)[,;.\n]+|\s+a\s+|\s+dále\s+|\s+taky\s+|\s+také\s+|\s+plus\s+|\s+ještě\s+`)
)

// ExtractLocation maps the text to a canonical region name, or "" when no
// known place is mentioned.
func ExtractLocation(text string) string {
	for _, row := range locationTable {
		if FuzzyMatch(text, row.keywords) {
			return row.label
		}
	}
	return ""
}

// peopleSuffix picks the Czech plural of "osoba" for a party size.
func peopleSuffix(n int) string {
	switch {
	case n == 1:
		return "osoba"
	case n < 5:
		return "osoby"
	default:
		return "osob"
	}
}

// ExtractPeople maps the text to a canonical party-size descriptor. The
// cascade runs keyword families first (couple, solo, family), then numeric
// and spelled-out counts, and finally a bare digit when the whole message
// is just a number (answering "how many of you?").
func ExtractPeople(text string) string {
	if FuzzyMatch(text, peopleTwoKeywords) {
		return "2 osoby"
	}
	if FuzzyMatch(text, peopleOneKeywords) {
		return "1 osoba"
	}
	if FuzzyMatch(text, peopleFamilyKeywords) {
		return "rodina"
	}

	n := Normalize(text)

	if m := peopleCountRe.FindStringSubmatch(n); m != nil {
		num, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d %s", num, peopleSuffix(num))
	}
	if m := peopleForRe.FindStringSubmatch(n); m != nil {
		num, _ := strconv.Atoi(m[1])
		return fmt.Sprintf("%d %s", num, peopleSuffix(num))
	}

	// Spelled-out numbers, unless the sentence is about nights or meals
	// ("3 noci" must not become "3 osoby").
	for _, row := range spelledNumberTable {
		if FuzzyMatch(text, row.keywords) && !nightsContextRe.MatchString(n) {
			return fmt.Sprintf("%d %s", row.value, peopleSuffix(row.value))
		}
	}

	if m := standaloneDigitRe.FindStringSubmatch(n); m != nil {
		num, _ := strconv.Atoi(m[1])
		if num >= 1 && num <= 20 {
			return fmt.Sprintf("%d %s", num, peopleSuffix(num))
		}
	}

	return ""
}

// ExtractDates maps the text to a period descriptor. Recognized phrasings
// keep the user's wording verbatim (trimmed); an explicit don't-care about
// timing collapses to the "kdykoliv" sentinel. Returns "" when nothing
// date-like is found.
func ExtractDates(text string) string {
	n := Normalize(text)
	trimmed := strings.TrimSpace(text)

	// Numeric dates: "15.3.", "15. 3. 2026", "15.3. - 18.3."
	if numericDateRe.MatchString(n) {
		return trimmed
	}

	// "na X nocí/dní", "na víkend", "na týden"
	if nightsStayRe.MatchString(n) {
		return trimmed
	}
	if weekendStayRe.MatchString(n) {
		return trimmed
	}
	if weekStayRe.MatchString(n) {
		return trimmed
	}

	if FuzzyMatch(text, monthKeywords) {
		return trimmed
	}
	if FuzzyMatch(text, relativeTimeKeywords) {
		return trimmed
	}
	if FuzzyMatch(text, seasonKeywords) {
		return trimmed
	}

	// "víkend v ...", "první týden v ..."
	if weekendRe.MatchString(n) && weekendCtxRe.MatchString(n) {
		return trimmed
	}
	if weekRe.MatchString(n) && weekOrdinalRe.MatchString(n) {
		return trimmed
	}

	if FuzzyMatch(text, anytimeKeywords) {
		return "kdykoliv"
	}

	return ""
}

// ExtractMeals maps the text to a canonical meal-plan label, or "".
func ExtractMeals(text string) string {
	for _, row := range mealsTable {
		if FuzzyMatch(text, row.keywords) {
			return row.label
		}
	}
	return ""
}

// ExtractAmenities collects every amenity mentioned in the text, joined
// with ", ". A general don't-care answer with no concrete amenity yields
// the "bez preference" sentinel. Returns "" when nothing matches.
func ExtractAmenities(text string) string {
	var found []string
	for _, row := range amenityTable {
		if FuzzyMatch(text, row.keywords) {
			found = append(found, row.label)
		}
	}
	if len(found) > 0 {
		return strings.Join(found, ", ")
	}
	if IsDontCare(text) {
		return NoPreference
	}
	return ""
}

// SplitSegments divides a message into independently extractable parts,
// splitting on punctuation and common Czech conjunctions so that
// "Krkonoše, 2 osoby a polopenze" fills three slots in one turn.
func SplitSegments(text string) []string {
	parts := segmentSplitRe.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}
