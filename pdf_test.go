package voxpdf

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/voxpdf/internal/pdftest"
)

func TestOpen_SimplePDF(t *testing.T) {
	doc, err := Open(pdftest.HelloWorld(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	if doc.PageCount() != 1 {
		t.Fatalf("Expected 1 page, got %d", doc.PageCount())
	}

	text, err := doc.Text(0)
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}
	if !strings.Contains(text, "Hello") || !strings.Contains(text, "World") {
		t.Errorf("Expected Hello and World in %q", text)
	}

	words, err := doc.WordPositions(0)
	if err != nil {
		t.Fatalf("WordPositions failed: %v", err)
	}
	found := map[string]bool{}
	for _, w := range words {
		if w.Text == "" || w.Bounds.Width <= 0 || w.Bounds.Height <= 0 {
			t.Errorf("Invalid word %+v", w)
		}
		found[w.Text] = true
	}
	if !found["Hello"] || !found["World"] {
		t.Errorf("Expected Hello and World among %+v", words)
	}

	paragraphs, err := doc.Paragraphs(0)
	if err != nil {
		t.Fatalf("Paragraphs failed: %v", err)
	}
	if len(paragraphs) == 0 {
		t.Fatal("Expected at least one paragraph")
	}
	if !strings.Contains(paragraphs[0].Text, "Hello") || paragraphs[0].WordCount < 1 {
		t.Errorf("Unexpected first paragraph %+v", paragraphs[0])
	}

	toc, err := doc.TableOfContents()
	if err != nil || toc == nil || len(toc) != 0 {
		t.Errorf("Expected empty table of contents, got %v, %v", toc, err)
	}

	_, err = doc.Text(1)
	if err == nil || err.Error() != "page 1 not found (document has 1 pages)" {
		t.Errorf("Unexpected error %v", err)
	}
}

func TestOpen_Nonexistent(t *testing.T) {
	doc, err := Open(filepath.Join(t.TempDir(), "nope.pdf"))
	if doc != nil {
		t.Error("Expected no document")
	}
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}

func TestOpen_TableOfContents(t *testing.T) {
	pages := []pdftest.Page{
		{Lines: []pdftest.Line{{Text: "Part One", X: 72, Y: 720, Size: 18}}},
		{Lines: []pdftest.Line{{Text: "Part Two", X: 72, Y: 720, Size: 18}}},
	}
	outline := []pdftest.Bookmark{
		{Title: "Part One", Page: 0, Kids: []pdftest.Bookmark{{Title: "Opening", Page: 0}}},
		{Title: "Part Two", Page: 1},
	}

	doc, err := Open(pdftest.Write(t, pages, outline))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer doc.Close()

	toc, err := doc.TableOfContents()
	if err != nil {
		t.Fatalf("TableOfContents failed: %v", err)
	}
	if len(toc) != 3 {
		t.Fatalf("Expected 3 entries, got %d", len(toc))
	}
	if toc[0].Title != "Part One" || !toc[0].IsChapter() {
		t.Errorf("Unexpected entry %+v", toc[0])
	}
	if toc[1].Title != "Opening" || !toc[1].IsSection() {
		t.Errorf("Unexpected entry %+v", toc[1])
	}
	if toc[2].PageNumber != 1 {
		t.Errorf("Expected Part Two on page 1, got %+v", toc[2])
	}
}

func TestExtractPages_SimplePDF(t *testing.T) {
	pages := []pdftest.Page{
		{Lines: []pdftest.Line{{Text: "first page", X: 72, Y: 700}}},
		{Lines: []pdftest.Line{{Text: "second page", X: 72, Y: 700}}},
		{Lines: []pdftest.Line{{Text: "third page", X: 72, Y: 700}}},
	}
	path := pdftest.Write(t, pages, nil)

	results, err := ExtractPages(path, []int{2, 1, 0}, 3)
	if err != nil {
		t.Fatalf("ExtractPages failed: %v", err)
	}
	want := []string{"third page", "second page", "first page"}
	for i, r := range results {
		if len(r.Paragraphs) != 1 || r.Paragraphs[0].Text != want[i] {
			t.Errorf("result %d = %+v, want %q", i, r.Paragraphs, want[i])
		}
	}
}
