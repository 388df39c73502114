package engine

import (
	"reflect"
	"testing"
)

func TestExtractLocation(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Chci jet do Krkonoš", "Krkonoše"},
		{"spindleruv mlyn", "Krkonoše"},
		{"Harrachov v zimě", "Krkonoše"},
		{"Pojedeme na Pustevny", "Beskydy"},
		{"lipno", "Šumava"},
		{"Karlova Studánka", "Jeseníky"},
		{"výlet do Prahy", "Praha"},
		// "praze" is two edits from "praha", outside the tolerance for a
		// five-letter keyword, so the locative form does not match.
		{"víkend v Praze", ""},
		{"Lednice a Valtice", "Jižní Morava"},
		{"Deštné v Orlických horách", "Orlické hory"},
		{"někam k moři", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractLocation(tt.text); got != tt.want {
			t.Errorf("ExtractLocation(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractPeople(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"couple phrase", "pojedu s partnerkou", "2 osoby"},
		{"we are two", "jedeme ve dvou", "2 osoby"},
		{"solo", "pojedu sama", "1 osoba"},
		{"family", "s dětmi", "rodina"},
		{"family word", "rodinný výlet", "rodina"},
		{"digit with unit", "6 osob", "6 osob"},
		{"digit with people", "pro 6 osob", "6 osob"},
		{"pro n", "pro 3", "3 osoby"},
		{"spelled number", "pojedeme čtyři", "4 osoby"},
		{"spelled small", "sedm", "7 osob"},
		{"standalone digit", "5", "5 osob"},
		{"standalone digit out of range", "42", ""},
		{"nights not people", "3 noci", ""},
		{"spelled number in meal context", "tři jídla denně", ""},
		{"nothing", "polopenze", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPeople(tt.text); got != tt.want {
				t.Errorf("ExtractPeople(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

// Czech plural endings depend on the count: 1 osoba, 2-4 osoby, 5+ osob.
func TestPeopleSuffix(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"1 osoba", "1 osoba"},
		{"pro 2", "2 osoby"},
		{"pro 4", "4 osoby"},
		{"pro 5", "5 osob"},
		{"pro 12", "12 osob"},
	}
	for _, tt := range tests {
		if got := ExtractPeople(tt.text); got != tt.want {
			t.Errorf("ExtractPeople(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractDates(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"numeric date", "15.3.", "15.3."},
		{"numeric range", "15.3. - 18.3.", "15.3. - 18.3."},
		{"nights stay", "na 3 noci", "na 3 noci"},
		{"weekend stay", "na víkend", "na víkend"},
		{"week stay", "na týden", "na týden"},
		{"month", "v červenci", "v červenci"},
		{"relative", "příští víkend", "příští víkend"},
		{"season", "o prázdninách", "o prázdninách"},
		{"weekend with context", "víkend v březnu", "víkend v březnu"},
		{"anytime collapses", "kdykoliv", "kdykoliv"},
		{"no date", "polopenze", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractDates(tt.text); got != tt.want {
				t.Errorf("ExtractDates(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractMeals(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"polopenze", "polopenze"},
		{"chci polopenzi", "polopenze"},
		{"plná penze", "plná penze"},
		{"se snídaní", "se snídaní"},
		{"snídaně a večeře", "polopenze"},
		{"all inclusive", "all inclusive"},
		{"vlastní stravování", "vlastní stravování"},
		{"bez stravy", "vlastní stravování"},
		{"bazén", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := ExtractMeals(tt.text); got != tt.want {
			t.Errorf("ExtractMeals(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestExtractAmenities(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"single", "bazén", "bazén"},
		{"wellness via sauna", "chci saunu", "wellness"},
		{"multiple joined", "bazén a saunu", "bazén, wellness"},
		{"kids corner", "dětský koutek", "dětský koutek"},
		{"pets", "jedeme se psem", "pet friendly"},
		{"dont care sentinel", "je mi to jedno", NoPreference},
		{"nothing", "příští víkend", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractAmenities(tt.text); got != tt.want {
				t.Errorf("ExtractAmenities(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			"commas and conjunction",
			"Krkonoše, 2 osoby a polopenze",
			[]string{"Krkonoše", "2 osoby", "polopenze"},
		},
		{
			"semicolons and newlines",
			"bazén;wellness\npolopenze",
			[]string{"bazén", "wellness", "polopenze"},
		},
		{
			"also connective",
			"polopenze a taky bazén",
			[]string{"polopenze", "taky bazén"},
		},
		{
			"single segment",
			"Krkonoše",
			[]string{"Krkonoše"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitSegments(tt.text); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitSegments(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
