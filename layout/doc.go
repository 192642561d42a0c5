// Package layout groups words into lines and paragraphs.
//
// # Lines
//
// The [LineDetector] walks words in order and starts a new line whenever the
// baseline moves by 5 points or more. Word order is never changed, so lines
// appear in the order the engine produced their words.
//
// # Paragraphs
//
// The [ParagraphDetector] merges consecutive lines and starts a new paragraph
// when any of these holds between the previous line and the current one:
//
//   - vertical spacing above 2x the previous line height
//   - font size larger or smaller by more than 15% (headings)
//   - left edge moved by more than 10 points with spacing above 1.3x height
//   - previous line shorter than 60% of the pair's average width with
//     spacing above 1.2x height
//
// Usage:
//
//	result := layout.Detect(words)
//	for _, p := range result.Paragraphs {
//	    fmt.Println(p.Index, p.Text, p.WordCount())
//	}
//
// # Hyphenation
//
// [Reassemble] joins words hyphenated across line breaks ("exam- ple" becomes
// "example") for text-to-speech output.
package layout
