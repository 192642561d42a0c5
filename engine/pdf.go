package engine

import (
	"os"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/voxpdf/layout"
	"github.com/tsawler/voxpdf/model"
	"github.com/tsawler/voxpdf/text"
)

// PDF is the default Engine. It is safe for concurrent use.
type PDF struct {
	mu   sync.Mutex
	next Handle
	docs map[Handle]*document

	ledger     Ledger
	assembler  *text.Assembler
	paragraphs *layout.ParagraphDetector
}

// document is the engine-side state of one open file
type document struct {
	mu     sync.Mutex
	path   string
	file   *os.File
	size   int64
	reader *pdf.Reader
	pages  int

	// last is the most recently analysed page
	last *pageAnalysis

	toc       []tocItem
	tocLoaded bool
}

// pageAnalysis holds everything derived from one page's content stream
type pageAnalysis struct {
	page       int
	words      []model.Word
	paragraphs []model.Paragraph
	text       string
}

// NewPDF creates an engine with the default word and paragraph settings
func NewPDF() *PDF {
	return NewPDFWithConfig(text.DefaultConfig(), layout.DefaultParagraphConfig())
}

// NewPDFWithConfig creates an engine with custom word assembly and paragraph
// detection settings
func NewPDFWithConfig(words text.Config, paragraphs layout.ParagraphConfig) *PDF {
	return &PDF{
		docs:       make(map[Handle]*document),
		assembler:  text.NewAssemblerWithConfig(words),
		paragraphs: layout.NewParagraphDetectorWithConfig(paragraphs),
	}
}

// Open implements Engine
func (e *PDF) Open(path string) (Handle, Code) {
	f, err := os.Open(path)
	if err != nil {
		return 0, IOError
	}

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		f.Close()
		return 0, IOError
	}

	var reader *pdf.Reader
	var pages int
	code := guard(func() Code {
		r, err := pdf.NewReader(f, info.Size())
		if err != nil {
			return InvalidPDF
		}
		reader = r
		pages = r.NumPage()
		return OK
	})
	if code != OK {
		f.Close()
		return 0, code
	}

	doc := &document{
		path:   path,
		file:   f,
		size:   info.Size(),
		reader: reader,
		pages:  pages,
	}

	e.mu.Lock()
	e.next++
	h := e.next
	e.docs[h] = doc
	e.mu.Unlock()

	return h, OK
}

// PageCount implements Engine
func (e *PDF) PageCount(h Handle) int {
	doc := e.lookup(h)
	if doc == nil {
		return 0
	}
	return doc.pages
}

// WordCount implements Engine
func (e *PDF) WordCount(h Handle, page int) (int, Code) {
	a, code := e.analyse(h, page)
	if code != OK {
		return 0, code
	}
	return len(a.words), OK
}

// FetchWord implements Engine
func (e *PDF) FetchWord(h Handle, page, index int) (WordRecord, *Buffer, Code) {
	a, code := e.analyse(h, page)
	if code != OK {
		return WordRecord{}, nil, code
	}
	if index < 0 || index >= len(a.words) {
		return WordRecord{}, nil, IndexOutOfRange
	}

	w := a.words[index]
	rec := WordRecord{
		X:        w.Bounds.X,
		Y:        w.Bounds.Y,
		Width:    w.Bounds.Width,
		Height:   w.Bounds.Height,
		Page:     w.PageNumber,
		FontSize: w.FontSize,
	}
	return rec, e.ledger.IssueString(w.Text), OK
}

// ParagraphCount implements Engine
func (e *PDF) ParagraphCount(h Handle, page int) (int, Code) {
	a, code := e.analyse(h, page)
	if code != OK {
		return 0, code
	}
	return len(a.paragraphs), OK
}

// FetchParagraph implements Engine
func (e *PDF) FetchParagraph(h Handle, page, index int) (ParagraphRecord, *Buffer, Code) {
	a, code := e.analyse(h, page)
	if code != OK {
		return ParagraphRecord{}, nil, code
	}
	if index < 0 || index >= len(a.paragraphs) {
		return ParagraphRecord{}, nil, IndexOutOfRange
	}

	p := a.paragraphs[index]
	rec := ParagraphRecord{
		Index:     p.Index,
		Page:      p.PageNumber,
		WordCount: p.WordCount,
	}
	return rec, e.ledger.IssueString(p.Text), OK
}

// TocCount implements Engine
func (e *PDF) TocCount(h Handle) (int, Code) {
	items, code := e.outline(h)
	if code != OK {
		return 0, code
	}
	return len(items), OK
}

// FetchTocEntry implements Engine
func (e *PDF) FetchTocEntry(h Handle, index int) (TocRecord, *Buffer, Code) {
	items, code := e.outline(h)
	if code != OK {
		return TocRecord{}, nil, code
	}
	if index < 0 || index >= len(items) {
		return TocRecord{}, nil, IndexOutOfRange
	}

	item := items[index]
	rec := TocRecord{
		Level:          item.level,
		Page:           item.page,
		ParagraphIndex: item.paragraph,
	}
	return rec, e.ledger.IssueString(item.title), OK
}

// ExtractPageText implements Engine
func (e *PDF) ExtractPageText(h Handle, page int) (*Buffer, Code) {
	a, code := e.analyse(h, page)
	if code != OK {
		return nil, code
	}
	return e.ledger.IssueString(a.text), OK
}

// ReleaseBuffer implements Engine
func (e *PDF) ReleaseBuffer(b *Buffer) {
	e.ledger.Release(b)
}

// ReleaseDocument implements Engine
func (e *PDF) ReleaseDocument(h Handle) {
	e.mu.Lock()
	doc, ok := e.docs[h]
	delete(e.docs, h)
	e.mu.Unlock()

	if !ok {
		return
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()
	doc.file.Close()
	doc.reader = nil
	doc.last = nil
	doc.toc = nil
}

// Outstanding returns the number of buffers handed out and not yet released
func (e *PDF) Outstanding() int {
	return e.ledger.Outstanding()
}

// OpenDocuments returns the number of handles not yet released
func (e *PDF) OpenDocuments() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.docs)
}

func (e *PDF) lookup(h Handle) *document {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.docs[h]
}

// analyse returns the words, paragraphs and text of a page, reusing the last
// analysed page when possible
func (e *PDF) analyse(h Handle, page int) (*pageAnalysis, Code) {
	doc := e.lookup(h)
	if doc == nil {
		return nil, InvalidPDF
	}

	doc.mu.Lock()
	defer doc.mu.Unlock()

	return e.analyseLocked(doc, page)
}

func (e *PDF) analyseLocked(doc *document, page int) (*pageAnalysis, Code) {
	if doc.reader == nil {
		return nil, InvalidPDF
	}
	if page < 0 || page >= doc.pages {
		return nil, PageNotFound
	}
	if doc.last != nil && doc.last.page == page {
		return doc.last, OK
	}

	var a *pageAnalysis
	code := guard(func() Code {
		p := doc.reader.Page(page + 1)
		if p.V.IsNull() {
			return InvalidPDF
		}

		content := p.Content()
		glyphs := make([]text.Glyph, 0, len(content.Text))
		for _, t := range content.Text {
			glyphs = append(glyphs, text.Glyph{
				Text:     t.S,
				X:        t.X,
				Y:        t.Y,
				Width:    t.W,
				FontName: t.Font,
				FontSize: t.FontSize,
			})
		}

		words := e.assembler.Assemble(glyphs, page)
		paragraphs := e.paragraphs.Detect(words)

		a = &pageAnalysis{
			page:       page,
			words:      words,
			paragraphs: paragraphs.Models(),
			text:       paragraphs.GetText(),
		}

		if len(words) == 0 {
			plain, err := p.GetPlainText(nil)
			if err != nil {
				return InvalidPDF
			}
			a.text = plain
		}
		return OK
	})
	if code != OK {
		return nil, code
	}

	doc.last = a
	return a, OK
}

// guard runs fn, converting a parser panic into InvalidPDF
func guard(fn func() Code) (code Code) {
	defer func() {
		if r := recover(); r != nil {
			code = InvalidPDF
		}
	}()
	return fn()
}

var _ Engine = (*PDF)(nil)
