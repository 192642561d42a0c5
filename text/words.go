package text

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/voxpdf/model"
)

// Glyph is a positioned run of characters as reported by the PDF parser.
// Parsers differ in granularity: some report one glyph per character, others
// one per text-showing operator.
type Glyph struct {
	Text     string
	X, Y     float64 // baseline origin
	Width    float64
	FontName string
	FontSize float64
}

// Config controls word assembly.
type Config struct {
	// LineTolerance is the maximum baseline difference, as a fraction of the
	// font size, for two glyphs to be on the same line (default: 0.5).
	LineTolerance float64

	// WordGapRatio is the horizontal gap, as a fraction of the font size, that
	// separates two words when the stream has no explicit spaces (default: 0.15).
	WordGapRatio float64

	// SpacedWordGapRatio is the gap that still separates two words on lines
	// that do carry explicit space glyphs (default: 0.8).
	SpacedWordGapRatio float64

	// DefaultFontSize is used for glyphs reported without a usable size (default: 12).
	DefaultFontSize float64

	// EstimatedCharWidth is the per-character width, as a fraction of the
	// font size, used when a glyph reports no width (default: 0.5).
	EstimatedCharWidth float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		LineTolerance:      0.5,
		WordGapRatio:       0.15,
		SpacedWordGapRatio: 0.8,
		DefaultFontSize:    12.0,
		EstimatedCharWidth: 0.5,
	}
}

// Assembler turns glyph runs into words.
type Assembler struct {
	config Config
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return &Assembler{config: DefaultConfig()}
}

// NewAssemblerWithConfig creates an assembler with custom configuration
func NewAssemblerWithConfig(config Config) *Assembler {
	return &Assembler{config: config}
}

// Assemble is a convenience wrapper around NewAssembler().Assemble.
func Assemble(glyphs []Glyph, page int) []model.Word {
	return NewAssembler().Assemble(glyphs, page)
}

// Assemble groups glyphs into lines in stream order, orders each line for
// reading, and splits it into words at whitespace and at large gaps. Every
// returned word has non-empty text and a box with positive width and height.
func (a *Assembler) Assemble(glyphs []Glyph, page int) []model.Word {
	glyphs = a.sanitize(glyphs)
	if len(glyphs) == 0 {
		return nil
	}

	var words []model.Word
	for _, line := range a.groupIntoLines(glyphs) {
		dir := lineDirection(line)
		ordered := orderForReading(line, dir)
		metrics := calculateLineMetrics(ordered, dir)
		words = append(words, a.splitWords(ordered, dir, metrics, page)...)
	}

	return words
}

// sanitize drops empty glyphs and fills in missing metrics.
func (a *Assembler) sanitize(glyphs []Glyph) []Glyph {
	out := make([]Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		if g.Text == "" {
			continue
		}
		if g.FontSize <= 0 || math.IsNaN(g.FontSize) {
			g.FontSize = a.config.DefaultFontSize
		}
		if g.Width <= 0 || math.IsNaN(g.Width) {
			g.Width = float64(len([]rune(g.Text))) * g.FontSize * a.config.EstimatedCharWidth
		}
		out = append(out, g)
	}
	return out
}

// groupIntoLines splits the glyph stream into lines whenever the baseline
// moves by more than the tolerance.
func (a *Assembler) groupIntoLines(glyphs []Glyph) [][]Glyph {
	lines := make([][]Glyph, 0)
	current := []Glyph{glyphs[0]}
	baseline := glyphs[0].Y

	for _, g := range glyphs[1:] {
		tolerance := math.Max(g.FontSize, current[len(current)-1].FontSize) * a.config.LineTolerance
		if math.Abs(g.Y-baseline) <= tolerance {
			current = append(current, g)
			continue
		}
		lines = append(lines, current)
		current = []Glyph{g}
		baseline = g.Y
	}

	return append(lines, current)
}

// lineDirection determines the dominant direction of a line, defaulting to LTR
func lineDirection(line []Glyph) Direction {
	var sb strings.Builder
	for _, g := range line {
		sb.WriteString(g.Text)
	}
	if DetectDirection(sb.String()) == RTL {
		return RTL
	}
	return LTR
}

// orderForReading sorts a line by X: ascending for LTR, descending for RTL.
// Glyphs at the same X keep stream order.
func orderForReading(line []Glyph, dir Direction) []Glyph {
	ordered := make([]Glyph, len(line))
	copy(ordered, line)
	sort.SliceStable(ordered, func(i, j int) bool {
		if dir == RTL {
			return ordered[i].X > ordered[j].X
		}
		return ordered[i].X < ordered[j].X
	})
	return ordered
}

// horizontalGap is the distance between two glyphs in reading direction
func horizontalGap(g, next Glyph, dir Direction) float64 {
	if dir == RTL {
		return g.X - (next.X + next.Width)
	}
	return next.X - (g.X + g.Width)
}

// lineMetrics holds computed metrics for a line to drive word splitting
type lineMetrics struct {
	isCharacterLevel  bool    // glyphs carry one or two characters each
	hasExplicitSpaces bool    // the line contains space glyphs
	typicalGap        float64 // 25th percentile of non-negative gaps between non-space glyphs
}

func calculateLineMetrics(line []Glyph, dir Direction) lineMetrics {
	metrics := lineMetrics{}
	gaps := make([]float64, 0, len(line))
	totalChars := 0

	for i, g := range line {
		totalChars += len([]rune(g.Text))
		if strings.TrimSpace(g.Text) == "" || strings.ContainsAny(g.Text, " \t") {
			metrics.hasExplicitSpaces = true
		}
		if i == len(line)-1 {
			continue
		}
		next := line[i+1]
		if strings.TrimSpace(g.Text) == "" || strings.TrimSpace(next.Text) == "" {
			continue
		}
		if gap := horizontalGap(g, next, dir); gap >= 0 {
			gaps = append(gaps, gap)
		}
	}

	metrics.isCharacterLevel = float64(totalChars)/float64(len(line)) <= 2.0

	if len(gaps) > 0 {
		sort.Float64s(gaps)
		metrics.typicalGap = gaps[len(gaps)/4]
	}

	return metrics
}

// isWordBreak decides whether a gap between two glyphs separates words
func (a *Assembler) isWordBreak(g, next Glyph, gap float64, metrics lineMetrics) bool {
	if gap <= 0 {
		return false
	}

	if metrics.hasExplicitSpaces {
		// Spaces mark the boundaries; only a gap far beyond the usual one splits.
		threshold := g.FontSize * a.config.SpacedWordGapRatio
		if metrics.isCharacterLevel {
			threshold = math.Max(threshold, metrics.typicalGap*5)
		}
		return gap >= threshold
	}

	threshold := g.FontSize * a.config.WordGapRatio
	if metrics.isCharacterLevel {
		threshold = math.Max(threshold, metrics.typicalGap*3)
	}
	return gap >= threshold
}

// wordBuilder accumulates the characters and box of the word being built
type wordBuilder struct {
	sb       strings.Builder
	bounds   model.Rect
	fontSize float64
}

func (b *wordBuilder) add(text string, g Glyph) {
	b.sb.WriteString(text)
	b.bounds = b.bounds.Union(model.NewRect(g.X, g.Y, g.Width, g.FontSize))
	b.fontSize = math.Max(b.fontSize, g.FontSize)
}

func (b *wordBuilder) empty() bool {
	return b.sb.Len() == 0
}

func (b *wordBuilder) flush(page int, out []model.Word) []model.Word {
	if b.empty() {
		return out
	}
	txt := norm.NFKC.String(b.sb.String())
	if strings.TrimSpace(txt) != "" {
		out = append(out, model.NewWord(txt, b.bounds, page, b.fontSize))
	}
	*b = wordBuilder{}
	return out
}

// splitWords cuts an ordered line into words
func (a *Assembler) splitWords(line []Glyph, dir Direction, metrics lineMetrics, page int) []model.Word {
	var words []model.Word
	var b wordBuilder

	for i, g := range line {
		if i > 0 && !b.empty() {
			prev := line[i-1]
			if a.isWordBreak(prev, g, horizontalGap(prev, g, dir), metrics) {
				words = b.flush(page, words)
			}
		}

		// A glyph may itself carry several words ("Hello World" in one run).
		// Split it, apportioning the width by rune count.
		runes := []rune(g.Text)
		charWidth := g.Width / float64(len(runes))
		start := 0
		for j, r := range runes {
			if !unicode.IsSpace(r) {
				continue
			}
			if j > start {
				b.add(string(runes[start:j]), subGlyph(g, start, j, charWidth, dir))
			}
			words = b.flush(page, words)
			start = j + 1
		}
		if start < len(runes) {
			b.add(string(runes[start:]), subGlyph(g, start, len(runes), charWidth, dir))
		}
	}

	return b.flush(page, words)
}

// subGlyph returns the portion [from, to) of a glyph's runes as its own glyph
func subGlyph(g Glyph, from, to int, charWidth float64, dir Direction) Glyph {
	sub := g
	sub.Width = float64(to-from) * charWidth
	if dir == RTL {
		sub.X = g.X + g.Width - float64(to)*charWidth
	} else {
		sub.X = g.X + float64(from)*charWidth
	}
	return sub
}
