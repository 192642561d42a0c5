package text

import (
	"testing"
)

// charGlyphs lays out s one glyph per character starting at x, each charWidth wide
func charGlyphs(s string, x, y, charWidth, fontSize float64) []Glyph {
	glyphs := make([]Glyph, 0, len(s))
	for _, r := range s {
		glyphs = append(glyphs, Glyph{
			Text:     string(r),
			X:        x,
			Y:        y,
			Width:    charWidth,
			FontName: "/F1",
			FontSize: fontSize,
		})
		x += charWidth
	}
	return glyphs
}

func wordTexts(t *testing.T, glyphs []Glyph) []string {
	t.Helper()
	words := Assemble(glyphs, 0)
	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
	}
	return texts
}

func assertTexts(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d words %q, want %d words %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("word %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAssemble_Empty(t *testing.T) {
	if words := Assemble(nil, 0); len(words) != 0 {
		t.Errorf("expected no words, got %d", len(words))
	}
	if words := Assemble([]Glyph{{Text: ""}}, 0); len(words) != 0 {
		t.Errorf("expected empty glyphs to be dropped, got %d words", len(words))
	}
}

func TestAssemble_CharacterLevelWithGap(t *testing.T) {
	// "Hello" and "World" drawn glyph by glyph with no space glyph, separated by a gap
	glyphs := charGlyphs("Hello", 100, 592, 6, 12)
	glyphs = append(glyphs, charGlyphs("World", 160, 592, 6, 12)...)

	assertTexts(t, wordTexts(t, glyphs), []string{"Hello", "World"})
}

func TestAssemble_ExplicitSpaces(t *testing.T) {
	// Tight layout where only the space glyph marks the boundary
	glyphs := charGlyphs("Hello World", 72, 700, 6, 12)

	assertTexts(t, wordTexts(t, glyphs), []string{"Hello", "World"})
}

func TestAssemble_MultiWordRun(t *testing.T) {
	glyphs := []Glyph{
		{Text: "The quick fox", X: 72, Y: 700, Width: 78, FontSize: 12},
	}

	words := Assemble(glyphs, 3)
	assertTexts(t, wordTexts(t, glyphs), []string{"The", "quick", "fox"})

	// 13 runes over 78 points: 6 points per rune
	if words[1].Bounds.X != 72+4*6 {
		t.Errorf("quick X = %v, want %v", words[1].Bounds.X, 72+4*6)
	}
	if words[1].Bounds.Width != 5*6 {
		t.Errorf("quick Width = %v, want %v", words[1].Bounds.Width, 5*6)
	}
	for _, w := range words {
		if w.PageNumber != 3 {
			t.Errorf("PageNumber = %d, want 3", w.PageNumber)
		}
	}
}

func TestAssemble_WordLevelRunsCloseTogether(t *testing.T) {
	// Two word-level runs with a normal inter-word gap (about a quarter em)
	glyphs := []Glyph{
		{Text: "Hello", X: 72, Y: 700, Width: 30, FontSize: 12},
		{Text: "World", X: 105, Y: 700, Width: 30, FontSize: 12},
	}

	assertTexts(t, wordTexts(t, glyphs), []string{"Hello", "World"})
}

func TestAssemble_KerningDoesNotSplit(t *testing.T) {
	glyphs := []Glyph{
		{Text: "Wor", X: 72, Y: 700, Width: 18, FontSize: 12},
		{Text: "ld", X: 90.5, Y: 700, Width: 12, FontSize: 12},
	}

	assertTexts(t, wordTexts(t, glyphs), []string{"World"})
}

func TestAssemble_Lines(t *testing.T) {
	glyphs := charGlyphs("Line1", 72, 700, 6, 12)
	glyphs = append(glyphs, charGlyphs("Line2", 72, 680, 6, 12)...)

	words := Assemble(glyphs, 0)
	assertTexts(t, wordTexts(t, glyphs), []string{"Line1", "Line2"})

	if words[0].Bounds.Y != 700 || words[1].Bounds.Y != 680 {
		t.Errorf("unexpected baselines %v, %v", words[0].Bounds.Y, words[1].Bounds.Y)
	}
}

func TestAssemble_StreamOrderAcrossLines(t *testing.T) {
	// Lines keep stream order even when a later line is higher on the page
	glyphs := charGlyphs("Second", 72, 600, 6, 12)
	glyphs = append(glyphs, charGlyphs("First", 72, 700, 6, 12)...)

	assertTexts(t, wordTexts(t, glyphs), []string{"Second", "First"})
}

func TestAssemble_OutOfOrderGlyphsOnOneLine(t *testing.T) {
	// Glyphs emitted right to left in the stream are read left to right
	glyphs := []Glyph{
		{Text: "b", X: 78, Y: 700, Width: 6, FontSize: 12},
		{Text: "a", X: 72, Y: 700, Width: 6, FontSize: 12},
	}

	assertTexts(t, wordTexts(t, glyphs), []string{"ab"})
}

func TestAssemble_RTL(t *testing.T) {
	// Hebrew "שלום" drawn glyph by glyph from right to left
	glyphs := []Glyph{
		{Text: "ש", X: 90, Y: 700, Width: 6, FontSize: 12},
		{Text: "ל", X: 84, Y: 700, Width: 6, FontSize: 12},
		{Text: "ו", X: 78, Y: 700, Width: 6, FontSize: 12},
		{Text: "ם", X: 72, Y: 700, Width: 6, FontSize: 12},
	}

	words := Assemble(glyphs, 0)
	assertTexts(t, wordTexts(t, glyphs), []string{"שלום"})
	if words[0].Bounds.X != 72 || words[0].Bounds.Width != 24 {
		t.Errorf("Bounds = %+v, want X=72 Width=24", words[0].Bounds)
	}
}

func TestAssemble_MissingMetrics(t *testing.T) {
	glyphs := []Glyph{
		{Text: "Hello", X: 100, Y: 592},
	}

	words := Assemble(glyphs, 0)
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}

	w := words[0]
	if w.FontSize != 12 {
		t.Errorf("FontSize = %v, want default 12", w.FontSize)
	}
	// 5 characters * 12pt * 0.5
	if w.Bounds.Width != 30 {
		t.Errorf("Width = %v, want estimated 30", w.Bounds.Width)
	}
	if w.Bounds.Height != 12 {
		t.Errorf("Height = %v, want 12", w.Bounds.Height)
	}
}

func TestAssemble_LigatureNormalization(t *testing.T) {
	glyphs := []Glyph{
		{Text: "ﬁne", X: 72, Y: 700, Width: 18, FontSize: 12},
	}

	assertTexts(t, wordTexts(t, glyphs), []string{"fine"})
}

func TestAssemble_AllWordsValid(t *testing.T) {
	glyphs := charGlyphs("  lots   of  spacing ", 72, 700, 5, 10)
	glyphs = append(glyphs, Glyph{Text: "x", X: 300, Y: 700, Width: 0, FontSize: 0})

	for _, w := range Assemble(glyphs, 0) {
		if !w.IsValid() {
			t.Errorf("invalid word emitted: %+v", w)
		}
	}
}

func TestNewAssemblerWithConfig(t *testing.T) {
	config := DefaultConfig()
	config.WordGapRatio = 10 // never split on gaps

	glyphs := []Glyph{
		{Text: "Hello", X: 72, Y: 700, Width: 30, FontSize: 12},
		{Text: "World", X: 110, Y: 700, Width: 30, FontSize: 12},
	}

	words := NewAssemblerWithConfig(config).Assemble(glyphs, 0)
	if len(words) != 1 || words[0].Text != "HelloWorld" {
		t.Errorf("expected a single merged word, got %+v", words)
	}
}
