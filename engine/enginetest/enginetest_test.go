package enginetest

import (
	"testing"

	"github.com/tsawler/voxpdf/engine"
)

func scripted() *Engine {
	return New().Add("doc.pdf", &Doc{
		Pages: []Page{{
			Text:       "Hello World",
			Words:      []Word{{Text: "Hello", X: 72, Y: 700, Width: 30, Height: 12, FontSize: 12}},
			Paragraphs: []Paragraph{{Text: "Hello World", WordCount: 2}},
		}},
		Toc: []TocEntry{{Title: "Intro", Level: 0, Page: 0}},
	})
}

func TestEngine_Script(t *testing.T) {
	e := scripted()

	h, code := e.Open("doc.pdf")
	if code != engine.OK {
		t.Fatalf("Open code = %v", code)
	}
	if e.PageCount(h) != 1 {
		t.Errorf("Expected 1 page, got %d", e.PageCount(h))
	}

	rec, buf, code := e.FetchWord(h, 0, 0)
	if code != engine.OK || string(buf.Bytes()) != "Hello" || rec.X != 72 {
		t.Errorf("Unexpected word %+v %q %v", rec, buf.Bytes(), code)
	}
	e.ReleaseBuffer(buf)
	e.ReleaseBuffer(buf)

	if e.Outstanding() != 0 || e.DoubleReleases() != 1 {
		t.Errorf("Expected 0 outstanding and 1 double release, got %d and %d", e.Outstanding(), e.DoubleReleases())
	}

	if _, code := e.WordCount(h, 1); code != engine.PageNotFound {
		t.Errorf("Expected PageNotFound, got %v", code)
	}

	e.ReleaseDocument(h)
	e.ReleaseDocument(h)
	if e.ReleasedDocuments() != 1 || e.StaleReleases() != 1 {
		t.Errorf("Expected 1 release and 1 stale release, got %d and %d", e.ReleasedDocuments(), e.StaleReleases())
	}

	if _, code := e.TocCount(h); code == engine.OK {
		t.Error("Expected released handle to fail")
	}
	if e.StaleUses() != 1 {
		t.Errorf("Expected 1 stale use, got %d", e.StaleUses())
	}
}

func TestEngine_Failures(t *testing.T) {
	e := scripted().
		FailOpen("broken.pdf", engine.InvalidPDF).
		Fail(OpFetchParagraph, 0, 0, engine.OutOfMemory).
		Fail(OpTocCount, 0, 0, engine.Code(42))

	if _, code := e.Open("broken.pdf"); code != engine.InvalidPDF {
		t.Errorf("Expected InvalidPDF, got %v", code)
	}
	if _, code := e.Open("missing.pdf"); code != engine.IOError {
		t.Errorf("Expected IOError, got %v", code)
	}

	h, _ := e.Open("doc.pdf")
	if _, buf, code := e.FetchParagraph(h, 0, 0); code != engine.OutOfMemory || buf != nil {
		t.Errorf("Expected OutOfMemory and no buffer, got %v", code)
	}
	if _, code := e.TocCount(h); code != engine.Code(42) {
		t.Errorf("Expected code 42, got %v", code)
	}
	if e.Calls(OpTocCount) != 1 || e.Calls(OpOpen) != 3 {
		t.Errorf("Unexpected call counts: toc %d, open %d", e.Calls(OpTocCount), e.Calls(OpOpen))
	}
	if e.OpenDocuments() != 1 {
		t.Errorf("Expected 1 open document, got %d", e.OpenDocuments())
	}
}
