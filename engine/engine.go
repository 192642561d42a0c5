package engine

// Handle identifies a document opened by an Engine. The zero Handle is never
// issued.
type Handle uint64

// Code is the status returned by every Engine operation
type Code int

// Status codes. Values outside this set are unknown failures and are carried
// through to the caller as such.
const (
	OK           Code = 0
	InvalidPDF   Code = 1
	PageNotFound Code = 2
	IOError      Code = 3
	OutOfMemory  Code = 4
	InvalidText  Code = 5
)

// IndexOutOfRange is reported for an item index outside [0, count). It is not
// one of the known codes.
const IndexOutOfRange Code = 64

// String returns a short name for the code
func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case InvalidPDF:
		return "invalid pdf"
	case PageNotFound:
		return "page not found"
	case IOError:
		return "io error"
	case OutOfMemory:
		return "out of memory"
	case InvalidText:
		return "invalid text"
	default:
		return "unknown"
	}
}

// Known reports whether c belongs to the closed set of status codes
func (c Code) Known() bool {
	return c >= OK && c <= InvalidText
}

// WordRecord describes one word. The word's text travels in the buffer
// returned alongside it.
type WordRecord struct {
	X, Y          float64
	Width, Height float64
	Page          int
	FontSize      float64
}

// ParagraphRecord describes one paragraph. Its text travels in the buffer.
type ParagraphRecord struct {
	Index     int
	Page      int
	WordCount int
}

// TocRecord describes one outline entry. Its title travels in the buffer.
type TocRecord struct {
	Level          int
	Page           int
	ParagraphIndex int
}

// Engine parses documents and yields their content through a count/fetch
// protocol. Pages and item indices are zero-based.
//
// Every buffer returned with OK is owned by the caller until it is passed to
// ReleaseBuffer, which must happen exactly once. When a call returns a code
// other than OK the buffer is nil.
//
// An Engine must be safe for concurrent use by distinct handles.
type Engine interface {
	// Open parses the document at path.
	Open(path string) (Handle, Code)

	// PageCount returns the number of pages, fixed at open.
	PageCount(h Handle) int

	WordCount(h Handle, page int) (int, Code)
	FetchWord(h Handle, page, index int) (WordRecord, *Buffer, Code)

	ParagraphCount(h Handle, page int) (int, Code)
	FetchParagraph(h Handle, page, index int) (ParagraphRecord, *Buffer, Code)

	TocCount(h Handle) (int, Code)
	FetchTocEntry(h Handle, index int) (TocRecord, *Buffer, Code)

	// ExtractPageText returns the page's full text.
	ExtractPageText(h Handle, page int) (*Buffer, Code)

	// ReleaseBuffer returns a buffer to the engine. Releasing nil is a no-op.
	ReleaseBuffer(b *Buffer)

	// ReleaseDocument frees everything held for h. Unknown handles are ignored.
	ReleaseDocument(h Handle)
}
