// Package voxpdf extracts text and structure from PDF documents for screen
// readers, text-to-speech and indexing.
//
// A [Document] is opened from a path, queried any number of times and closed:
//
//	doc, err := voxpdf.Open("book.pdf")
//	if err != nil {
//	    return err
//	}
//	defer doc.Close()
//
//	text, err := doc.Text(0)
//	words, err := doc.WordPositions(0)
//	paragraphs, err := doc.Paragraphs(0)
//	toc, err := doc.TableOfContents()
//
// Pages are zero-indexed. Every operation either returns its complete result
// or an error; partial results are never returned. Errors are [*Error] values
// matching one of the sentinel errors:
//
//	if errors.Is(err, voxpdf.ErrPageNotFound) {
//	    // ...
//	}
//
// Parsing is delegated to an [engine.Engine]. [Open] uses the built-in PDF
// engine; [OpenWithEngine] accepts any implementation.
//
// For whole-book processing, [ExtractPages] fans pages out to a pool of
// workers and [Stream] delivers paragraphs page by page over a channel.
package voxpdf
