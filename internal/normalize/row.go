package normalize

import "strings"

// Canonical 3-column schema written for every surviving table. Downstream
// tooling matches the separator literally, so it must not change.
const (
	CanonicalHeader    = "| Category | Specification | Value |"
	CanonicalSeparator = "|----------|---------------|-------|"
)

const cellJoiner = " - "

// Cells extracts the cell values from a delimiter-prefixed row. The empty
// fragment before the first delimiter is dropped, as is the fragment after
// the last one when it is blank; a non-blank trailing fragment is cell data
// from a row missing its closing delimiter and is kept. Cells are
// whitespace-trimmed. Returns nil for lines with fewer than two delimiters.
func Cells(line string) []string {
	parts := strings.Split(strings.TrimSpace(line), delimiter)
	if len(parts) < 3 {
		return nil
	}
	parts = parts[1:]
	if strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// mergeCells joins cells with the hyphen joiner, skipping empty cells so no
// dangling joiner is produced.
func mergeCells(cells []string) string {
	kept := make([]string, 0, len(cells))
	for _, c := range cells {
		if c != "" {
			kept = append(kept, c)
		}
	}
	return strings.Join(kept, cellJoiner)
}

// NormalizeRow reconciles a single table row to the 3-column schema.
// Separator rows are reset to the canonical separator regardless of original
// width. Rows wider than three cells keep cells one and two and merge the
// remainder into the Value column. Rows with fewer than three cells are
// returned unchanged: short rows are a tolerated data gap, never padded.
func NormalizeRow(line string) string {
	if !strings.HasPrefix(strings.TrimSpace(line), delimiter) {
		return line
	}
	if IsSeparatorLine(line) {
		return CanonicalSeparator
	}
	cells := Cells(line)
	if len(cells) <= 3 {
		return line
	}
	return "| " + cells[0] + " | " + cells[1] + " | " + mergeCells(cells[2:]) + " |"
}
