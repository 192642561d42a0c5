package layout

import (
	"math"
	"strings"

	"github.com/tsawler/voxpdf/model"
)

// Paragraph represents a logical paragraph of text
type Paragraph struct {
	// Index is the paragraph's position on the page (0-based)
	Index int

	// Lines are the text lines in this paragraph
	Lines []Line

	// Text is the lines joined by single spaces
	Text string

	// BBox is the bounding box of the paragraph
	BBox model.Rect

	// PageNumber is the zero-indexed page of the paragraph's first word
	PageNumber int
}

// ParagraphLayout represents the detected paragraph structure of a page
type ParagraphLayout struct {
	// Paragraphs are the detected paragraphs, in word order
	Paragraphs []Paragraph

	// Config is the configuration used for detection
	Config ParagraphConfig
}

// ParagraphConfig holds configuration for paragraph detection.
// Ratios are relative to the previous line's height unless stated otherwise.
type ParagraphConfig struct {
	// Line is the configuration used to group words into lines
	Line LineConfig

	// SpacingRatio: a vertical gap above this many line heights always breaks
	// (default: 2.0)
	SpacingRatio float64

	// FontChangeRatio: a font size larger or smaller by this factor breaks,
	// separating headings from body text (default: 1.15)
	FontChangeRatio float64

	// IndentThreshold is the change in left edge, in points, that breaks when
	// combined with a gap above IndentSpacingRatio (default: 10 points)
	IndentThreshold float64

	// IndentSpacingRatio (default: 1.3)
	IndentSpacingRatio float64

	// ShortLineRatio: a previous line narrower than this fraction of the
	// average of the two lines' widths breaks when combined with a gap above
	// ShortLineSpacingRatio (default: 0.6)
	ShortLineRatio float64

	// ShortLineSpacingRatio (default: 1.2)
	ShortLineSpacingRatio float64
}

// DefaultParagraphConfig returns sensible default configuration
func DefaultParagraphConfig() ParagraphConfig {
	return ParagraphConfig{
		Line:                  DefaultLineConfig(),
		SpacingRatio:          2.0,
		FontChangeRatio:       1.15,
		IndentThreshold:       10.0,
		IndentSpacingRatio:    1.3,
		ShortLineRatio:        0.6,
		ShortLineSpacingRatio: 1.2,
	}
}

// ParagraphDetector detects paragraphs from words
type ParagraphDetector struct {
	config ParagraphConfig
}

// NewParagraphDetector creates a new paragraph detector with default configuration
func NewParagraphDetector() *ParagraphDetector {
	return &ParagraphDetector{
		config: DefaultParagraphConfig(),
	}
}

// NewParagraphDetectorWithConfig creates a paragraph detector with custom configuration
func NewParagraphDetectorWithConfig(config ParagraphConfig) *ParagraphDetector {
	return &ParagraphDetector{
		config: config,
	}
}

// Detect is a convenience wrapper around NewParagraphDetector().Detect.
func Detect(words []model.Word) *ParagraphLayout {
	return NewParagraphDetector().Detect(words)
}

// Detect groups words into lines, then merges consecutive lines into
// paragraphs. Every paragraph holds at least one word.
func (d *ParagraphDetector) Detect(words []model.Word) *ParagraphLayout {
	lines := NewLineDetectorWithConfig(d.config.Line).Detect(words)
	return d.DetectFromLines(lines)
}

// DetectFromLines merges consecutive lines into paragraphs
func (d *ParagraphDetector) DetectFromLines(lines []Line) *ParagraphLayout {
	result := &ParagraphLayout{Config: d.config}

	var current []Line
	for i := range lines {
		if len(lines[i].Words) == 0 {
			continue
		}
		if len(current) > 0 && d.shouldBreak(current[len(current)-1], lines[i]) {
			result.Paragraphs = append(result.Paragraphs, buildParagraph(current, len(result.Paragraphs)))
			current = nil
		}
		current = append(current, lines[i])
	}

	if len(current) > 0 {
		result.Paragraphs = append(result.Paragraphs, buildParagraph(current, len(result.Paragraphs)))
	}

	return result
}

// shouldBreak decides whether cur starts a new paragraph after prev
func (d *ParagraphDetector) shouldBreak(prev, cur Line) bool {
	spacing := math.Abs(cur.Baseline - prev.Baseline)

	// Large vertical gap
	if spacing > prev.Height*d.config.SpacingRatio {
		return true
	}

	// Font size jump in either direction (entering or leaving a heading)
	if cur.FontSize > prev.FontSize*d.config.FontChangeRatio {
		return true
	}
	if prev.FontSize > cur.FontSize*d.config.FontChangeRatio {
		return true
	}

	// Indentation change with moderate spacing
	if math.Abs(cur.Left-prev.Left) > d.config.IndentThreshold &&
		spacing > prev.Height*d.config.IndentSpacingRatio {
		return true
	}

	// Short previous line (typically a heading or a paragraph's last line)
	avgWidth := (prev.Width + cur.Width) / 2
	if prev.Width < avgWidth*d.config.ShortLineRatio &&
		spacing > prev.Height*d.config.ShortLineSpacingRatio {
		return true
	}

	return false
}

// buildParagraph assembles a paragraph from its lines
func buildParagraph(lines []Line, index int) Paragraph {
	para := Paragraph{
		Index:      index,
		Lines:      lines,
		PageNumber: lines[0].Words[0].PageNumber,
	}

	texts := make([]string, len(lines))
	for i, line := range lines {
		texts[i] = line.Text
		para.BBox = para.BBox.Union(line.BBox)
	}
	para.Text = strings.Join(texts, " ")

	return para
}

// ParagraphCount returns the number of paragraphs
func (l *ParagraphLayout) ParagraphCount() int {
	if l == nil {
		return 0
	}
	return len(l.Paragraphs)
}

// GetParagraph returns the paragraph at the given index, or nil if out of range
func (l *ParagraphLayout) GetParagraph(index int) *Paragraph {
	if l == nil || index < 0 || index >= len(l.Paragraphs) {
		return nil
	}
	return &l.Paragraphs[index]
}

// GetText returns the page text: lines separated by newlines and paragraphs
// by blank lines
func (l *ParagraphLayout) GetText() string {
	if l == nil {
		return ""
	}

	var sb strings.Builder
	for i, para := range l.Paragraphs {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		for j, line := range para.Lines {
			if j > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(line.Text)
		}
	}
	return sb.String()
}

// Models converts the layout to model paragraphs
func (l *ParagraphLayout) Models() []model.Paragraph {
	if l == nil {
		return nil
	}

	out := make([]model.Paragraph, len(l.Paragraphs))
	for i := range l.Paragraphs {
		out[i] = l.Paragraphs[i].Model()
	}
	return out
}

// WordCount returns the number of words in the paragraph
func (p *Paragraph) WordCount() int {
	if p == nil {
		return 0
	}
	count := 0
	for i := range p.Lines {
		count += p.Lines[i].WordCount()
	}
	return count
}

// LineCount returns the number of lines in the paragraph
func (p *Paragraph) LineCount() int {
	if p == nil {
		return 0
	}
	return len(p.Lines)
}

// Words returns the paragraph's words in order
func (p *Paragraph) Words() []model.Word {
	if p == nil {
		return nil
	}
	var words []model.Word
	for _, line := range p.Lines {
		words = append(words, line.Words...)
	}
	return words
}

// Model converts the paragraph to its value representation
func (p *Paragraph) Model() model.Paragraph {
	return model.NewParagraph(p.Index, p.Text, p.PageNumber, p.WordCount())
}
