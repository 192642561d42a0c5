// Package export renders extracted paragraphs and outlines as accessible
// HTML or Markdown.
//
// Usage:
//
//	book, err := export.Collect(doc, "My Book")
//	if err != nil {
//	    return err
//	}
//	page, err := export.HTML(book)
//
// The HTML output is a single page: the outline as a <nav> of nested lists
// linking to paragraph anchors, one <section> per PDF page, and headings for
// paragraphs that outline entries point at. Markdown is produced from the
// same HTML with html-to-markdown.
package export
