package engine

import (
	"testing"
)

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		keywords []string
		want     bool
	}{
		{"exact substring", "chci jet do krkonos", []string{"krkonos"}, true},
		{"substring with diacritics", "Pojedeme do Krkonoš", []string{"krkonos"}, true},
		{"typo within tolerance", "krkonse jsou krasne", []string{"krkonose"}, true},
		{"inflected ending", "v cervenci", []string{"cervenec"}, true},
		{"two word phrase", "pristi vikend bych jel", []string{"pristi vikend"}, true},
		{"short keyword needs exact", "jedu spat", []string{"spa"}, true},
		{"short keyword no tolerance", "hory", []string{"hora"}, false},
		{"unrelated text", "jake bude pocasi", []string{"polopenze"}, false},
		{"empty text", "", []string{"krkonose"}, false},
		{"no keywords", "cokoliv", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FuzzyMatch(tt.text, tt.keywords); got != tt.want {
				t.Errorf("FuzzyMatch(%q, %v) = %v, want %v", tt.text, tt.keywords, got, tt.want)
			}
		})
	}
}

// Tolerance must grow with keyword length: a one-letter typo is accepted
// for medium keywords, two for long ones, none for short ones.
func TestFuzzyMatchToleranceScaling(t *testing.T) {
	// len 4: exact only
	if FuzzyMatch("brnx", []string{"brno"}) {
		t.Error("short keyword matched with an edit, want exact only")
	}
	if !FuzzyMatch("brno", []string{"brno"}) {
		t.Error("exact short keyword did not match")
	}

	// len 5-7: one edit
	if !FuzzyMatch("sumavo", []string{"sumava"}) {
		t.Error("medium keyword did not absorb one edit")
	}
	if FuzzyMatch("sumxvo", []string{"sumava"}) {
		t.Error("medium keyword absorbed two edits")
	}

	// len 8+: two edits
	if !FuzzyMatch("polopenza", []string{"polopenze"}) {
		t.Error("long keyword did not absorb one edit")
	}
	if !FuzzyMatch("polopenzya", []string{"polopenze"}) {
		t.Error("long keyword did not absorb two edits")
	}
}

func TestIsDontCare(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Je mi to jedno", true},
		{"jedno", true},
		{"nezáleží", true},
		{"cokoliv", true},
		{"je to fuk", true},
		{"polopenze", false},
		{"Krkonoše", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsDontCare(tt.text); got != tt.want {
			t.Errorf("IsDontCare(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
