// Package engine defines the boundary between voxpdf and the code that parses
// PDF bytes.
//
// An [Engine] opens documents and exposes their words, paragraphs, page text
// and outline through a count/fetch protocol:
//
//	n, code := e.WordCount(h, page)
//	for i := 0; i < n; i++ {
//	    rec, buf, code := e.FetchWord(h, page, i)
//	    // use rec and buf.Bytes()
//	    e.ReleaseBuffer(buf)
//	}
//
// Text is handed over in [Buffer] values that the caller releases exactly
// once. A [Ledger] counts outstanding buffers so that leaks show up in tests.
//
// # Default engine
//
// [PDF] is backed by github.com/ledongthuc/pdf for page content and
// github.com/pdfcpu/pdfcpu for the document outline. Glyph runs are assembled
// into words by the text package and grouped into paragraphs by the layout
// package. The most recently analysed page of each document is kept so that
// a count followed by a run of fetches parses the page once.
package engine
