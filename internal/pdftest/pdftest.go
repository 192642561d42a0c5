// Package pdftest builds small, well-formed PDF files for tests.
//
// Text is drawn in Courier with explicit glyph widths so that parsers which
// position glyphs from the font's /Widths array see realistic spacing.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Line is one line of text drawn at (X, Y) in points
type Line struct {
	Text string
	X, Y float64
	Size float64 // 12 when zero
}

// Page is the content of one page
type Page struct {
	Lines []Line
}

// Bookmark is an outline entry pointing at a zero-based page
type Bookmark struct {
	Title string
	Page  int
	Kids  []Bookmark
}

// CharWidth is the advance of every glyph, in thousandths of the font size
const CharWidth = 600

// Build returns the bytes of a PDF with the given pages and outline
func Build(pages []Page, outline []Bookmark) []byte {
	b := &builder{}

	catalog := b.reserve()
	pagesObj := b.reserve()
	font := b.reserve()

	pageObjs := make([]int, len(pages))
	contentObjs := make([]int, len(pages))
	for i := range pages {
		pageObjs[i] = b.reserve()
		contentObjs[i] = b.reserve()
	}

	var outlinesObj int
	if len(outline) > 0 {
		outlinesObj = b.reserve()
	}

	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", pageObjs[i])
	}

	catalogDict := fmt.Sprintf("<< /Type /Catalog /Pages %d 0 R", pagesObj)
	if outlinesObj != 0 {
		catalogDict += fmt.Sprintf(" /Outlines %d 0 R /PageMode /UseOutlines", outlinesObj)
	}
	b.set(catalog, catalogDict+" >>")

	b.set(pagesObj, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d /MediaBox [0 0 612 792] >>",
		strings.Join(kids, " "), len(pages)))

	widths := make([]string, 126-32+1)
	for i := range widths {
		widths[i] = fmt.Sprint(CharWidth)
	}
	b.set(font, fmt.Sprintf("<< /Type /Font /Subtype /Type1 /BaseFont /Courier /FirstChar 32 /LastChar 126 /Widths [%s] >>",
		strings.Join(widths, " ")))

	for i, page := range pages {
		var content strings.Builder
		for _, line := range page.Lines {
			size := line.Size
			if size == 0 {
				size = 12
			}
			fmt.Fprintf(&content, "BT /F1 %g Tf %g %g Td (%s) Tj ET\n", size, line.X, line.Y, escape(line.Text))
		}

		b.set(pageObjs[i], fmt.Sprintf("<< /Type /Page /Parent %d 0 R /Resources << /Font << /F1 %d 0 R >> >> /Contents %d 0 R >>",
			pagesObj, font, contentObjs[i]))
		b.set(contentObjs[i], fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", content.Len(), content.String()))
	}

	if outlinesObj != 0 {
		first, last, count := b.outlineItems(outline, outlinesObj, pageObjs)
		b.set(outlinesObj, fmt.Sprintf("<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count %d >>", first, last, count))
	}

	return b.bytes(catalog)
}

// Write builds a PDF and writes it to a file in a temporary directory
func Write(t testing.TB, pages []Page, outline []Bookmark) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.pdf")
	if err := os.WriteFile(path, Build(pages, outline), 0o644); err != nil {
		t.Fatalf("failed to write PDF fixture: %v", err)
	}
	return path
}

// HelloWorld writes a single-page PDF reading "Hello World"
func HelloWorld(t testing.TB) string {
	t.Helper()
	return Write(t, []Page{{Lines: []Line{{Text: "Hello World", X: 72, Y: 700}}}}, nil)
}

// outlineItems writes a sibling chain of outline items and returns the first
// and last object numbers plus the number of items in the subtree
func (b *builder) outlineItems(items []Bookmark, parent int, pageObjs []int) (first, last, count int) {
	objs := make([]int, len(items))
	for i := range items {
		objs[i] = b.reserve()
	}

	for i, item := range items {
		dict := fmt.Sprintf("<< /Title (%s) /Parent %d 0 R /Dest [%d 0 R /Fit]",
			escape(item.Title), parent, pageObjs[item.Page])
		if i > 0 {
			dict += fmt.Sprintf(" /Prev %d 0 R", objs[i-1])
		}
		if i < len(items)-1 {
			dict += fmt.Sprintf(" /Next %d 0 R", objs[i+1])
		}
		count++
		if len(item.Kids) > 0 {
			kf, kl, kc := b.outlineItems(item.Kids, objs[i], pageObjs)
			dict += fmt.Sprintf(" /First %d 0 R /Last %d 0 R /Count %d", kf, kl, kc)
			count += kc
		}
		b.set(objs[i], dict+" >>")
	}

	return objs[0], objs[len(objs)-1], count
}

type builder struct {
	objects []string
}

func (b *builder) reserve() int {
	b.objects = append(b.objects, "")
	return len(b.objects)
}

func (b *builder) set(num int, body string) {
	b.objects[num-1] = body
}

func (b *builder) bytes(root int) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, len(b.objects))
	for i, body := range b.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, body)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(b.objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root %d 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(b.objects)+1, root, xref)

	return buf.Bytes()
}

func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
