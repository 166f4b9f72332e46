package normalize

import "strings"

// Document holds a markdown file as individual lines. The line-ending
// convention of the source is remembered so output matches input.
type Document struct {
	Lines []string
	CRLF  bool
}

// ParseDocument splits content into lines, normalizing CRLF to LF internally.
func ParseDocument(content string) *Document {
	crlf := strings.Contains(content, "\r\n")
	if crlf {
		content = strings.ReplaceAll(content, "\r\n", "\n")
	}
	return &Document{Lines: strings.Split(content, "\n"), CRLF: crlf}
}

// String joins the lines back into a single document, restoring the source
// line-ending convention.
func (d *Document) String() string {
	out := strings.Join(d.Lines, "\n")
	if d.CRLF {
		out = strings.ReplaceAll(out, "\n", "\r\n")
	}
	return out
}
