package layout

import (
	"math"
	"strings"

	"github.com/tsawler/voxpdf/model"
)

// Line represents a single line of words on a page
type Line struct {
	// Words are the words on this line, in the order they were produced
	Words []model.Word

	// Text is the words joined by single spaces
	Text string

	// BBox is the bounding box of the line
	BBox model.Rect

	// Index is the line's position on the page (0-based)
	Index int

	// Baseline is the Y coordinate of the line's first word
	Baseline float64

	// Height is the height of the line's first word
	Height float64

	// Left is the X coordinate of the line's first word
	Left float64

	// FontSize is the font size of the line's first word
	FontSize float64

	// Width is the sum of the widths of the line's words
	Width float64
}

// LineConfig holds configuration for line detection
type LineConfig struct {
	// YThreshold is the maximum baseline difference, in points, between a
	// word and the start of the current line for the word to join it
	// (default: 5 points)
	YThreshold float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		YThreshold: 5.0,
	}
}

// LineDetector groups words into lines
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{
		config: config,
	}
}

// Detect groups consecutive words into lines. Word order is preserved: a new
// line starts whenever a word's baseline differs from the current line's by
// YThreshold or more.
func (d *LineDetector) Detect(words []model.Word) []Line {
	if len(words) == 0 {
		return nil
	}

	var lines []Line
	current := []model.Word{words[0]}
	currentY := words[0].Bounds.Y

	for _, w := range words[1:] {
		if math.Abs(w.Bounds.Y-currentY) < d.config.YThreshold {
			current = append(current, w)
			continue
		}
		lines = append(lines, buildLine(current, len(lines)))
		current = []model.Word{w}
		currentY = w.Bounds.Y
	}

	return append(lines, buildLine(current, len(lines)))
}

// buildLine computes a line's text and metrics from its words
func buildLine(words []model.Word, index int) Line {
	first := words[0]
	line := Line{
		Words:    words,
		Index:    index,
		Baseline: first.Bounds.Y,
		Height:   first.Bounds.Height,
		Left:     first.Bounds.X,
		FontSize: first.FontSize,
	}

	texts := make([]string, len(words))
	for i, w := range words {
		texts[i] = w.Text
		line.BBox = line.BBox.Union(w.Bounds)
		line.Width += w.Bounds.Width
	}
	line.Text = strings.Join(texts, " ")

	return line
}

// WordCount returns the number of words on the line
func (line *Line) WordCount() int {
	if line == nil {
		return 0
	}
	return len(line.Words)
}

// IsEmpty returns true if the line has no text content
func (line *Line) IsEmpty() bool {
	if line == nil {
		return true
	}
	return strings.TrimSpace(line.Text) == ""
}
