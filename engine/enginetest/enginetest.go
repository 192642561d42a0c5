// Package enginetest provides a scriptable in-memory engine.Engine.
//
// Documents are registered by path with their pages, words, paragraphs and
// outline. Any call can be made to fail with a chosen code, and the engine
// records every buffer and document it hands out so tests can check that
// each one is released exactly once.
package enginetest

import (
	"sync"

	"github.com/tsawler/voxpdf/engine"
)

// Op names an engine operation for failure injection and call counting
type Op string

// Operations
const (
	OpOpen            Op = "Open"
	OpWordCount       Op = "WordCount"
	OpFetchWord       Op = "FetchWord"
	OpParagraphCount  Op = "ParagraphCount"
	OpFetchParagraph  Op = "FetchParagraph"
	OpTocCount        Op = "TocCount"
	OpFetchTocEntry   Op = "FetchTocEntry"
	OpExtractPageText Op = "ExtractPageText"
	OpPageCount       Op = "PageCount"
)

// Word is a scripted word
type Word struct {
	Text          string
	X, Y          float64
	Width, Height float64
	FontSize      float64
}

// Paragraph is a scripted paragraph
type Paragraph struct {
	Text      string
	WordCount int
}

// TocEntry is a scripted outline entry
type TocEntry struct {
	Title          string
	Level          int
	Page           int
	ParagraphIndex int
}

// Page is the scripted content of one page
type Page struct {
	Text       string
	Words      []Word
	Paragraphs []Paragraph
}

// Doc is a scripted document
type Doc struct {
	Pages []Page
	Toc   []TocEntry
}

type failureKey struct {
	op    Op
	page  int
	index int
}

// Engine is a scriptable engine.Engine. The zero value is not usable; call New.
type Engine struct {
	mu       sync.Mutex
	docs     map[string]*Doc
	openCode map[string]engine.Code
	failures map[failureKey]engine.Code
	open     map[engine.Handle]*Doc
	next     engine.Handle
	calls    map[Op]int

	released      int
	staleReleases int
	staleUses     int

	ledger engine.Ledger
}

// New creates an engine with no documents
func New() *Engine {
	return &Engine{
		docs:     make(map[string]*Doc),
		openCode: make(map[string]engine.Code),
		failures: make(map[failureKey]engine.Code),
		open:     make(map[engine.Handle]*Doc),
		calls:    make(map[Op]int),
	}
}

// Add registers a document under path
func (e *Engine) Add(path string, doc *Doc) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.docs[path] = doc
	return e
}

// FailOpen makes Open of path return code
func (e *Engine) FailOpen(path string, code engine.Code) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.openCode[path] = code
	return e
}

// Fail makes op return code for the given page and index. Page is ignored
// for TOC operations and index is ignored for count operations and
// ExtractPageText; pass 0 for ignored arguments.
func (e *Engine) Fail(op Op, page, index int, code engine.Code) *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.failures[failureKey{op, page, index}] = code
	return e
}

// Calls returns how many times op was invoked
func (e *Engine) Calls(op Op) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[op]
}

// Outstanding returns the number of buffers not yet released
func (e *Engine) Outstanding() int {
	return e.ledger.Outstanding()
}

// Issued returns the number of buffers handed out
func (e *Engine) Issued() int {
	return e.ledger.Issued()
}

// DoubleReleases returns how many buffers were released more than once
func (e *Engine) DoubleReleases() int {
	return e.ledger.DoubleReleases()
}

// OpenDocuments returns the number of handles not yet released
func (e *Engine) OpenDocuments() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.open)
}

// ReleasedDocuments returns how many handles were released
func (e *Engine) ReleasedDocuments() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.released
}

// StaleReleases returns how many times ReleaseDocument was called with a
// handle that was not open
func (e *Engine) StaleReleases() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staleReleases
}

// StaleUses returns how many operations were called with a handle that was
// not open
func (e *Engine) StaleUses() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.staleUses
}

// Open implements engine.Engine
func (e *Engine) Open(path string) (engine.Handle, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls[OpOpen]++
	if code, ok := e.openCode[path]; ok {
		return 0, code
	}
	doc, ok := e.docs[path]
	if !ok {
		return 0, engine.IOError
	}

	e.next++
	e.open[e.next] = doc
	return e.next, engine.OK
}

// PageCount implements engine.Engine
func (e *Engine) PageCount(h engine.Handle) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.calls[OpPageCount]++
	doc := e.docLocked(h)
	if doc == nil {
		return 0
	}
	return len(doc.Pages)
}

// WordCount implements engine.Engine
func (e *Engine) WordCount(h engine.Handle, page int) (int, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, code := e.pageLocked(OpWordCount, h, page, 0)
	if code != engine.OK {
		return 0, code
	}
	return len(p.Words), engine.OK
}

// FetchWord implements engine.Engine
func (e *Engine) FetchWord(h engine.Handle, page, index int) (engine.WordRecord, *engine.Buffer, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, code := e.pageLocked(OpFetchWord, h, page, index)
	if code != engine.OK {
		return engine.WordRecord{}, nil, code
	}
	if index < 0 || index >= len(p.Words) {
		return engine.WordRecord{}, nil, engine.IndexOutOfRange
	}

	w := p.Words[index]
	rec := engine.WordRecord{
		X:        w.X,
		Y:        w.Y,
		Width:    w.Width,
		Height:   w.Height,
		Page:     page,
		FontSize: w.FontSize,
	}
	return rec, e.ledger.IssueString(w.Text), engine.OK
}

// ParagraphCount implements engine.Engine
func (e *Engine) ParagraphCount(h engine.Handle, page int) (int, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, code := e.pageLocked(OpParagraphCount, h, page, 0)
	if code != engine.OK {
		return 0, code
	}
	return len(p.Paragraphs), engine.OK
}

// FetchParagraph implements engine.Engine
func (e *Engine) FetchParagraph(h engine.Handle, page, index int) (engine.ParagraphRecord, *engine.Buffer, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, code := e.pageLocked(OpFetchParagraph, h, page, index)
	if code != engine.OK {
		return engine.ParagraphRecord{}, nil, code
	}
	if index < 0 || index >= len(p.Paragraphs) {
		return engine.ParagraphRecord{}, nil, engine.IndexOutOfRange
	}

	para := p.Paragraphs[index]
	rec := engine.ParagraphRecord{
		Index:     index,
		Page:      page,
		WordCount: para.WordCount,
	}
	return rec, e.ledger.IssueString(para.Text), engine.OK
}

// TocCount implements engine.Engine
func (e *Engine) TocCount(h engine.Handle) (int, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, code := e.docOpLocked(OpTocCount, h, 0)
	if code != engine.OK {
		return 0, code
	}
	return len(doc.Toc), engine.OK
}

// FetchTocEntry implements engine.Engine
func (e *Engine) FetchTocEntry(h engine.Handle, index int) (engine.TocRecord, *engine.Buffer, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	doc, code := e.docOpLocked(OpFetchTocEntry, h, index)
	if code != engine.OK {
		return engine.TocRecord{}, nil, code
	}
	if index < 0 || index >= len(doc.Toc) {
		return engine.TocRecord{}, nil, engine.IndexOutOfRange
	}

	entry := doc.Toc[index]
	rec := engine.TocRecord{
		Level:          entry.Level,
		Page:           entry.Page,
		ParagraphIndex: entry.ParagraphIndex,
	}
	return rec, e.ledger.IssueString(entry.Title), engine.OK
}

// ExtractPageText implements engine.Engine
func (e *Engine) ExtractPageText(h engine.Handle, page int) (*engine.Buffer, engine.Code) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, code := e.pageLocked(OpExtractPageText, h, page, 0)
	if code != engine.OK {
		return nil, code
	}
	return e.ledger.IssueString(p.Text), engine.OK
}

// ReleaseBuffer implements engine.Engine
func (e *Engine) ReleaseBuffer(b *engine.Buffer) {
	e.ledger.Release(b)
}

// ReleaseDocument implements engine.Engine
func (e *Engine) ReleaseDocument(h engine.Handle) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.open[h]; !ok {
		e.staleReleases++
		return
	}
	delete(e.open, h)
	e.released++
}

func (e *Engine) docLocked(h engine.Handle) *Doc {
	doc, ok := e.open[h]
	if !ok {
		e.staleUses++
		return nil
	}
	return doc
}

// docOpLocked resolves a document-scoped operation
func (e *Engine) docOpLocked(op Op, h engine.Handle, index int) (*Doc, engine.Code) {
	e.calls[op]++

	doc := e.docLocked(h)
	if doc == nil {
		return nil, engine.InvalidPDF
	}
	if code, ok := e.failures[failureKey{op, 0, index}]; ok {
		return nil, code
	}
	return doc, engine.OK
}

// pageLocked resolves a page-scoped operation
func (e *Engine) pageLocked(op Op, h engine.Handle, page, index int) (*Page, engine.Code) {
	e.calls[op]++

	doc := e.docLocked(h)
	if doc == nil {
		return nil, engine.InvalidPDF
	}
	if code, ok := e.failures[failureKey{op, page, index}]; ok {
		return nil, code
	}
	if page < 0 || page >= len(doc.Pages) {
		return nil, engine.PageNotFound
	}
	return &doc.Pages[page], engine.OK
}

var _ engine.Engine = (*Engine)(nil)
