package normalize

import "strings"

const (
	delimiter       = "|"
	separatorMarker = "---"
	headerPrefix    = "## "
)

// TableState tracks whether the rewrite cursor is inside a table region.
type TableState int

const (
	Outside TableState = iota
	InTable
)

// IsTableLine reports whether a line participates in a table region, i.e.
// contains the column delimiter.
func IsTableLine(line string) bool {
	return strings.Contains(line, delimiter)
}

// IsSeparatorLine reports whether a table line is a header/data separator row.
func IsSeparatorLine(line string) bool {
	return strings.Contains(line, separatorMarker)
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func isHeader(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "##")
}

// Next returns the state after observing a line together with the line that
// follows it (empty at end of document). A table region starts only when a
// delimiter line is immediately followed by a separator row, so a lone line
// with an inline delimiter stays prose. Once inside, the region ends at the
// first line without the delimiter.
func (s TableState) Next(line, lookahead string) TableState {
	switch s {
	case Outside:
		if IsTableLine(line) && IsSeparatorLine(lookahead) {
			return InTable
		}
	case InTable:
		if !IsTableLine(line) {
			return Outside
		}
	}
	return s
}
