package normalize

import (
	"regexp"
	"strings"
)

// concatenatedHeader matches a header marker glued onto the trailing text of
// the previous line, e.g. "…intact.## Dimensions".
var concatenatedHeader = regexp.MustCompile(`([a-zA-Z0-9).\]*-])(##\s)`)

// SpacingResult reports what the spacing pass changed.
type SpacingResult struct {
	HeadersSplit int `json:"headers_split"`
}

// FixSpacing regularizes header and blank-line spacing: headers concatenated
// onto previous text are split onto their own line, every section header gets
// exactly one blank line above it (unless it opens the document), blank runs
// are capped at two and blank lines are trimmed from both ends.
func FixSpacing(content string) (string, SpacingResult) {
	doc := ParseDocument(content)
	var res SpacingResult

	joined := strings.Join(doc.Lines, "\n")
	res.HeadersSplit = len(concatenatedHeader.FindAllStringIndex(joined, -1))
	joined = concatenatedHeader.ReplaceAllString(joined, "${1}\n\n${2}")
	lines := strings.Split(joined, "\n")

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if isHeader(line) {
			for len(out) > 0 && isBlank(out[len(out)-1]) {
				out = out[:len(out)-1]
			}
			if len(out) > 0 {
				out = append(out, "")
			}
		}
		out = append(out, line)
	}

	doc.Lines = tightenBlanks(out, 2)
	return doc.String(), res
}
