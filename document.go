package voxpdf

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"unicode/utf8"

	"github.com/tsawler/voxpdf/engine"
	"github.com/tsawler/voxpdf/model"
)

// Document is an open PDF document.
//
// A Document is not safe for concurrent use. Open one Document per goroutine
// to extract in parallel; distinct Documents share no mutable state.
type Document struct {
	engine    engine.Engine
	handle    engine.Handle
	pageCount int
	path      string
	logger    *slog.Logger
	closed    atomic.Bool
}

// Open opens the PDF at path with the default engine.
//
// Example:
//
//	doc, err := voxpdf.Open("book.pdf")
//	if err != nil {
//	    return err
//	}
//	defer doc.Close()
func Open(path string, opts ...Option) (*Document, error) {
	o := buildOptions(opts)
	return open(o.newEngine(), path, o)
}

// OpenWithEngine opens the document at path with e.
func OpenWithEngine(e engine.Engine, path string, opts ...Option) (*Document, error) {
	return open(e, path, buildOptions(opts))
}

func open(e engine.Engine, path string, o options) (*Document, error) {
	h, code := e.Open(path)
	if code != engine.OK {
		err := translate(code, path, 0, 0)
		o.logger.Debug("open failed", "path", path, "error", err)
		return nil, err
	}

	doc := &Document{
		engine:    e,
		handle:    h,
		pageCount: e.PageCount(h),
		path:      path,
		logger:    o.logger.With("path", path),
	}
	if doc.pageCount < 0 {
		doc.pageCount = 0
	}

	doc.logger.Debug("document opened", "pages", doc.pageCount)
	return doc, nil
}

// Close releases the document. Calling Close more than once is a no-op.
func (d *Document) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	d.engine.ReleaseDocument(d.handle)
	d.logger.Debug("document closed")
	return nil
}

// PageCount returns the number of pages, as reported when the document was
// opened.
func (d *Document) PageCount() int {
	return d.pageCount
}

// Path returns the path the document was opened from
func (d *Document) Path() string {
	return d.path
}

// Text returns the full text of a zero-indexed page.
func (d *Document) Text(page int) (string, error) {
	if err := d.checkOpen(); err != nil {
		return "", err
	}

	context := fmt.Sprintf("page %d", page)
	buf, code := d.engine.ExtractPageText(d.handle, page)
	if code != engine.OK {
		return "", d.fail(code, context, page)
	}
	defer d.engine.ReleaseBuffer(buf)

	return bufferString(buf, context)
}

// WordPositions returns every word on a zero-indexed page with its bounding
// box and font size, in engine order. Either all words are returned or none.
func (d *Document) WordPositions(page int) ([]model.Word, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}

	count, code := d.engine.WordCount(d.handle, page)
	if code != engine.OK {
		return nil, d.fail(code, fmt.Sprintf("page %d", page), page)
	}

	words := make([]model.Word, 0, count)
	for i := 0; i < count; i++ {
		context := fmt.Sprintf("page %d, word %d", page, i)

		rec, buf, code := d.engine.FetchWord(d.handle, page, i)
		if code != engine.OK {
			return nil, d.fail(code, context, page)
		}

		text, err := bufferString(buf, context)
		d.engine.ReleaseBuffer(buf)
		if err != nil {
			return nil, d.logFailure(err)
		}

		words = append(words, model.NewWord(text,
			model.NewRect(rec.X, rec.Y, rec.Width, rec.Height), rec.Page, rec.FontSize))
	}

	return words, nil
}

// Paragraphs returns the paragraphs of a zero-indexed page in engine order.
// Either all paragraphs are returned or none.
func (d *Document) Paragraphs(page int) ([]model.Paragraph, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}

	count, code := d.engine.ParagraphCount(d.handle, page)
	if code != engine.OK {
		return nil, d.fail(code, fmt.Sprintf("page %d", page), page)
	}

	paragraphs := make([]model.Paragraph, 0, count)
	for i := 0; i < count; i++ {
		context := fmt.Sprintf("page %d, paragraph %d", page, i)

		rec, buf, code := d.engine.FetchParagraph(d.handle, page, i)
		if code != engine.OK {
			return nil, d.fail(code, context, page)
		}

		text, err := bufferString(buf, context)
		d.engine.ReleaseBuffer(buf)
		if err != nil {
			return nil, d.logFailure(err)
		}

		paragraphs = append(paragraphs, model.NewParagraph(rec.Index, text, rec.Page, rec.WordCount))
	}

	return paragraphs, nil
}

// TableOfContents returns the document outline flattened in document order.
// A document without an outline yields an empty, non-nil slice.
func (d *Document) TableOfContents() ([]model.TocEntry, error) {
	if err := d.checkOpen(); err != nil {
		return nil, err
	}

	count, code := d.engine.TocCount(d.handle)
	if code != engine.OK {
		return nil, d.fail(code, "TOC extraction", 0)
	}

	entries := make([]model.TocEntry, 0, count)
	for i := 0; i < count; i++ {
		context := fmt.Sprintf("TOC entry %d", i)

		rec, buf, code := d.engine.FetchTocEntry(d.handle, i)
		if code != engine.OK {
			return nil, d.fail(code, context, 0)
		}

		title, err := bufferString(buf, context)
		d.engine.ReleaseBuffer(buf)
		if err != nil {
			return nil, d.logFailure(err)
		}

		entries = append(entries, model.NewTocEntry(title, rec.Level, rec.Page, rec.ParagraphIndex))
	}

	return entries, nil
}

func (d *Document) checkOpen() error {
	if d.closed.Load() {
		return &Error{Kind: KindClosed, Context: d.path}
	}
	return nil
}

// fail translates an engine failure, enriching page-not-found with the
// page count known since open
func (d *Document) fail(code engine.Code, context string, page int) error {
	return d.logFailure(translate(code, context, page, d.pageCount))
}

func (d *Document) logFailure(err error) error {
	d.logger.Debug("extraction failed", "error", err)
	return err
}

// bufferString copies a buffer into a string, rejecting invalid UTF-8
func bufferString(buf *engine.Buffer, context string) (string, error) {
	b := buf.Bytes()
	if !utf8.Valid(b) {
		return "", &Error{Kind: KindInvalidText, Context: context}
	}
	return string(b), nil
}
