package model

// Paragraph is a group of consecutive words on one page.
type Paragraph struct {
	// Index is the paragraph's position within its page (0-based).
	Index int

	// Text is the aggregated text of the words composing the paragraph.
	Text string

	// PageNumber is the zero-indexed page the paragraph belongs to.
	PageNumber int

	// WordCount is the number of words in the paragraph as reported by the
	// engine. It is at least 1 for every emitted paragraph.
	WordCount int
}

// NewParagraph creates a paragraph
func NewParagraph(index int, text string, pageNumber, wordCount int) Paragraph {
	return Paragraph{
		Index:      index,
		Text:       text,
		PageNumber: pageNumber,
		WordCount:  wordCount,
	}
}
