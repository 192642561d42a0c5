package model

import (
	"math"
	"testing"
)

// ============================================================================
// Rect Tests
// ============================================================================

func TestNewRect(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if r.X != 10 || r.Y != 20 || r.Width != 100 || r.Height != 50 {
		t.Errorf("NewRect() = %+v, want {10, 20, 100, 50}", r)
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Left() != 10 {
		t.Errorf("Left() = %v, want 10", r.Left())
	}
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 20 {
		t.Errorf("Bottom() = %v, want 20", r.Bottom())
	}
	if r.Top() != 60 {
		t.Errorf("Top() = %v, want 60", r.Top())
	}

	c := r.Center()
	if math.Abs(c.X-25) > 0.0001 || math.Abs(c.Y-40) > 0.0001 {
		t.Errorf("Center() = %+v, want {25, 40}", c)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"inside", Point{5, 5}, true},
		{"on edge", Point{10, 0}, true},
		{"outside right", Point{11, 5}, false},
		{"outside below", Point{5, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"disjoint", Rect{0, 0, 10, 10}, Rect{20, 20, 10, 10}, Rect{0, 0, 30, 30}},
		{"nested", Rect{0, 0, 100, 100}, Rect{10, 10, 5, 5}, Rect{0, 0, 100, 100}},
		{"empty receiver", Rect{}, Rect{5, 5, 1, 2}, Rect{5, 5, 1, 2}},
		{"empty argument", Rect{5, 5, 1, 2}, Rect{}, Rect{5, 5, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	if !(Rect{0, 0, 0, 10}).IsEmpty() {
		t.Error("zero width should be empty")
	}
	if !(Rect{0, 0, 10, -1}).IsEmpty() {
		t.Error("negative height should be empty")
	}
	if (Rect{0, 0, 1, 1}).IsEmpty() {
		t.Error("unit box should not be empty")
	}
	if got := (Rect{0, 0, 4, 5}).Area(); got != 20 {
		t.Errorf("Area() = %v, want 20", got)
	}
}

// ============================================================================
// Word Tests
// ============================================================================

func TestNewWord(t *testing.T) {
	bounds := NewRect(10, 20, 30, 40)
	w := NewWord("test", bounds, 0, 12)

	if w.Text != "test" {
		t.Errorf("Text = %q, want %q", w.Text, "test")
	}
	if w.Bounds != bounds {
		t.Errorf("Bounds = %+v, want %+v", w.Bounds, bounds)
	}
	if w.PageNumber != 0 {
		t.Errorf("PageNumber = %d, want 0", w.PageNumber)
	}
	if w.FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", w.FontSize)
	}
}

func TestWordIsValid(t *testing.T) {
	tests := []struct {
		name string
		word Word
		want bool
	}{
		{"valid", NewWord("Hello", NewRect(0, 0, 30, 12), 0, 12), true},
		{"empty text", NewWord("", NewRect(0, 0, 30, 12), 0, 12), false},
		{"blank text", NewWord("  ", NewRect(0, 0, 30, 12), 0, 12), false},
		{"zero width", NewWord("a", NewRect(0, 0, 0, 12), 0, 12), false},
		{"zero font size", NewWord("a", NewRect(0, 0, 5, 12), 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.word.IsValid(); got != tt.want {
				t.Errorf("IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

// ============================================================================
// Paragraph Tests
// ============================================================================

func TestNewParagraph(t *testing.T) {
	p := NewParagraph(0, "test", 2, 1)

	if p.Index != 0 || p.Text != "test" || p.PageNumber != 2 || p.WordCount != 1 {
		t.Errorf("NewParagraph() = %+v", p)
	}
}

// ============================================================================
// TocEntry Tests
// ============================================================================

func TestTocEntryLevels(t *testing.T) {
	tests := []struct {
		level       int
		wantChapter bool
		wantSection bool
	}{
		{0, true, false},
		{1, false, true},
		{2, false, false},
		{5, false, false},
	}

	for _, tt := range tests {
		e := NewTocEntry("Introduction", tt.level, 1, 0)
		if e.IsChapter() != tt.wantChapter {
			t.Errorf("level %d: IsChapter() = %v, want %v", tt.level, e.IsChapter(), tt.wantChapter)
		}
		if e.IsSection() != tt.wantSection {
			t.Errorf("level %d: IsSection() = %v, want %v", tt.level, e.IsSection(), tt.wantSection)
		}
	}
}

func TestNewTocEntry(t *testing.T) {
	e := NewTocEntry("", 0, 3, 7)

	if e.Title != "" {
		t.Errorf("Title = %q, want empty", e.Title)
	}
	if e.PageNumber != 3 || e.ParagraphIndex != 7 {
		t.Errorf("NewTocEntry() = %+v", e)
	}
}
