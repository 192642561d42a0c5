package model

import "strings"

// Word is a single word extracted from a page, with its position and font size.
// Words are plain values: they do not reference the document they came from
// and remain valid after the document is closed.
type Word struct {
	// Text is the word's characters. Never empty for words emitted by an engine.
	Text string

	// Bounds is the word's bounding box. Width and Height are positive for
	// every word emitted by an engine.
	Bounds Rect

	// PageNumber is the zero-indexed page the word was found on.
	PageNumber int

	// FontSize is the font size in points.
	FontSize float64
}

// NewWord creates a word
func NewWord(text string, bounds Rect, pageNumber int, fontSize float64) Word {
	return Word{
		Text:       text,
		Bounds:     bounds,
		PageNumber: pageNumber,
		FontSize:   fontSize,
	}
}

// IsValid reports whether the word carries text and a box with positive area.
func (w Word) IsValid() bool {
	return strings.TrimSpace(w.Text) != "" && !w.Bounds.IsEmpty() && w.FontSize > 0
}
