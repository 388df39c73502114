package engine

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \n\t  ", ""},
		{"lowercases", "KRKONOŠE", "krkonose"},
		{"strips diacritics", "Špindlerův Mlýn", "spindleruv mlyn"},
		{"mixed case with diacritics", "Chci jet do Beskyd", "chci jet do beskyd"},
		{"trims", "  polopenze  ", "polopenze"},
		{"keeps digits and punctuation", "15.3. - 18.3.", "15.3. - 18.3."},
		{"czech sentence", "Pojedeme v červenci s dětmi", "pojedeme v cervenci s detmi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Špindlerův Mlýn",
		"JEDEME VE DVOU",
		"příští víkend",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestWords(t *testing.T) {
	got := Words("  Chci   jet do Krkonoš\n")
	want := []string{"chci", "jet", "do", "krkonos"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words() = %v, want %v", got, want)
	}

	if got := Words("   "); len(got) != 0 {
		t.Errorf("Words on blank input = %v, want empty", got)
	}
}
