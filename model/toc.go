package model

// TocEntry is one entry of a document's table of contents (outline).
//
// The outline tree is not materialized: nesting is implied by the sequence of
// levels, in document order. A level 1 entry following a level 0 entry is a
// section of that chapter.
type TocEntry struct {
	// Title is the entry's label. May be empty.
	Title string

	// Level is the nesting depth: 0 = chapter, 1 = section, 2 = subsection, ...
	Level int

	// PageNumber is the zero-indexed target page.
	PageNumber int

	// ParagraphIndex points into the paragraphs of the target page, for
	// navigation. It is not checked against the page's paragraph count.
	ParagraphIndex int
}

// NewTocEntry creates a table of contents entry
func NewTocEntry(title string, level, pageNumber, paragraphIndex int) TocEntry {
	return TocEntry{
		Title:          title,
		Level:          level,
		PageNumber:     pageNumber,
		ParagraphIndex: paragraphIndex,
	}
}

// IsChapter returns true for top-level entries (level 0)
func (e TocEntry) IsChapter() bool {
	return e.Level == 0
}

// IsSection returns true for second-level entries (level 1)
func (e TocEntry) IsSection() bool {
	return e.Level == 1
}
