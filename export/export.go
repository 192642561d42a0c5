package export

import (
	"fmt"
	"strings"

	"github.com/tsawler/voxpdf/layout"
	"github.com/tsawler/voxpdf/model"
)

// Page holds the paragraphs of one zero-indexed page
type Page struct {
	Number     int
	Paragraphs []model.Paragraph
}

// Book is everything needed to render a document
type Book struct {
	Title string
	Toc   []model.TocEntry
	Pages []Page
}

// Source is the part of a voxpdf.Document that Collect reads
type Source interface {
	PageCount() int
	Paragraphs(page int) ([]model.Paragraph, error)
	TableOfContents() ([]model.TocEntry, error)
}

// Collect reads every page and the outline of src into a Book. Words
// hyphenated across line breaks are joined.
func Collect(src Source, title string) (*Book, error) {
	toc, err := src.TableOfContents()
	if err != nil {
		return nil, fmt.Errorf("reading table of contents: %w", err)
	}

	book := &Book{
		Title: title,
		Toc:   toc,
		Pages: make([]Page, 0, src.PageCount()),
	}

	for page := 0; page < src.PageCount(); page++ {
		paragraphs, err := src.Paragraphs(page)
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", page, err)
		}
		book.Pages = append(book.Pages, Page{
			Number:     page,
			Paragraphs: layout.Reassemble(paragraphs),
		})
	}

	return book, nil
}

// anchor returns the fragment identifier of a paragraph
func anchor(page, paragraph int) string {
	return fmt.Sprintf("p%d-%d", page, paragraph)
}

type headingKey struct {
	page, paragraph int
}

// headings maps the paragraphs that outline entries point at to the entry's
// level. An entry only marks a paragraph whose text contains its title.
func (b *Book) headings() map[headingKey]int {
	text := make(map[headingKey]string)
	for _, p := range b.Pages {
		for _, para := range p.Paragraphs {
			text[headingKey{p.Number, para.Index}] = para.Text
		}
	}

	out := make(map[headingKey]int)
	for _, e := range b.Toc {
		key := headingKey{e.PageNumber, e.ParagraphIndex}
		body, ok := text[key]
		if !ok || strings.TrimSpace(e.Title) == "" {
			continue
		}
		if _, seen := out[key]; seen {
			continue
		}
		if strings.Contains(fold(body), fold(e.Title)) {
			out[key] = e.Level
		}
	}
	return out
}

func fold(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
