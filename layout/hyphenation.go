package layout

import (
	"regexp"

	"github.com/tsawler/voxpdf/model"
)

// hyphenBreak matches a word split across a line break: "exam- ple".
// The continuation must start with a lowercase letter so that "Jean- Luc"
// and "self-contained" are left alone.
var hyphenBreak = regexp.MustCompile(`([\p{L}\p{N}_]+)-\s+([a-z][\p{L}\p{N}_]*)`)

// ReassembleText joins words hyphenated across line breaks
func ReassembleText(s string) string {
	return hyphenBreak.ReplaceAllString(s, "$1$2")
}

// Reassemble returns copies of the paragraphs with hyphenated line breaks
// joined. WordCount is left as reported.
func Reassemble(paragraphs []model.Paragraph) []model.Paragraph {
	out := make([]model.Paragraph, len(paragraphs))
	for i, p := range paragraphs {
		p.Text = ReassembleText(p.Text)
		out[i] = p
	}
	return out
}
