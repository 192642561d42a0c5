// Package text assembles words from positioned glyph runs.
//
// PDF parsers report text as a stream of glyphs (or short runs of glyphs),
// each with a baseline origin, an advance width and a font size. The
// [Assembler] turns that stream into [model.Word] values:
//
//	words := text.Assemble(glyphs, pageIndex)
//
// # Lines
//
// Glyphs are grouped into lines in stream order: a new line starts whenever
// the baseline moves by more than half the font size. Each line is then
// ordered for reading, left to right or right to left depending on its
// dominant [Direction].
//
// # Word Boundaries
//
// Words end at whitespace characters and at horizontal gaps:
//
//   - Lines with explicit space glyphs: only very large gaps split words
//   - Lines without spaces: gaps above a fraction of the font size split words
//
// Word text is normalized to NFKC so that ligatures such as "ﬁ" read as "fi".
//
// # Text Direction
//
// [DetectDirection] classifies text by the Unicode bidi class of its
// characters: LTR, RTL, or Neutral for digits, punctuation and whitespace.
package text
