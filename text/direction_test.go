package text

import (
	"testing"
)

func TestCharDirection(t *testing.T) {
	tests := []struct {
		name string
		char rune
		want Direction
	}{
		// Arabic
		{"Arabic alif", 'ا', RTL}, // U+0627
		{"Arabic meem", 'م', RTL}, // U+0645

		// Hebrew
		{"Hebrew alef", 'א', RTL}, // U+05D0
		{"Hebrew shin", 'ש', RTL}, // U+05E9

		// Latin (LTR)
		{"Latin A", 'A', LTR},
		{"Latin é", 'é', LTR}, // U+00E9

		// Cyrillic and Greek (LTR)
		{"Cyrillic я", 'я', LTR}, // U+044F
		{"Greek Omega", 'Ω', LTR}, // U+03A9

		// CJK
		{"CJK 中", '中', LTR}, // U+4E2D

		// Neutral characters
		{"Space", ' ', Neutral},
		{"Digit 5", '5', Neutral},
		{"Period", '.', Neutral},
		{"Question", '?', Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CharDirection(tt.char)
			if got != tt.want {
				t.Errorf("CharDirection(%q U+%04X) = %v, want %v",
					tt.char, tt.char, got, tt.want)
			}
		})
	}
}

func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", Neutral},
		{"latin", "Hello", LTR},
		{"hebrew", "שלום", RTL},
		{"arabic with digits", "مرحبا 123", RTL},
		{"digits only", "12345", Neutral},
		{"mostly latin", "Hello שׁ", LTR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectDirection(tt.text); got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	if LTR.String() != "LTR" || RTL.String() != "RTL" || Neutral.String() != "Neutral" {
		t.Error("unexpected direction names")
	}
	if Direction(99).String() != "Unknown" {
		t.Errorf("Direction(99).String() = %q, want Unknown", Direction(99).String())
	}
}
