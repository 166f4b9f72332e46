package normalize

import "strings"

// evidenceLookahead is the number of body lines scanned for row evidence
// before a specification section is judged empty. Bounded so a long section
// with trailing unrelated prose cannot force a full scan.
const evidenceLookahead = 4

const specSectionPrefix = "## Specifications"

// placeholderCells are values that carry no data: schema labels, separator
// fragments and empty cells.
var placeholderCells = map[string]bool{
	"":              true,
	"Category":      true,
	"Specification": true,
	"Value":         true,
	"---":           true,
}

// SectionResult reports what the section pruner removed.
type SectionResult struct {
	SectionsPruned int `json:"sections_pruned"`
	LinesDropped   int `json:"lines_dropped"`
}

// CleanSections removes evidence-free sections, drops placeholder "(No ...
// found)" lines, collapses blank runs to a single blank line and trims blank
// lines from both ends of the document. It must run on table-rewritten input,
// since row evidence depends on normalized cell counts.
func CleanSections(content string) (string, SectionResult) {
	doc := ParseDocument(content)
	lines := doc.Lines
	var res SectionResult

	kept := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])

		if strings.HasPrefix(trimmed, headerPrefix) && evidenceFree(lines, i) {
			end := sectionEnd(lines, i)
			res.SectionsPruned++
			res.LinesDropped += end - i
			i = end
			continue
		}

		if isNoContentLine(trimmed) {
			res.LinesDropped++
			i++
			continue
		}

		kept = append(kept, lines[i])
		i++
	}

	doc.Lines = tightenBlanks(kept, 1)
	return doc.String(), res
}

// evidenceFree judges whether the section whose header sits at start carries
// no usable data.
func evidenceFree(lines []string, start int) bool {
	header := strings.TrimSpace(lines[start])

	// A header cut off mid-extraction never got a body worth keeping.
	if strings.HasSuffix(header, "(") {
		return true
	}

	// Specification sections must show at least one populated row.
	if strings.HasPrefix(header, specSectionPrefix) && !hasRowEvidence(lines, start) {
		return true
	}

	// A body that opens by announcing missing content has nothing else.
	end := sectionEnd(lines, start)
	for j := start + 1; j < end; j++ {
		body := strings.TrimSpace(lines[j])
		if body == "" {
			continue
		}
		return isNoContentLine(body)
	}
	return false
}

// hasRowEvidence scans the first few lines after a section header for a table
// row with at least one non-placeholder cell. The scan stops early at prose,
// since a table never resumes after it.
func hasRowEvidence(lines []string, start int) bool {
	for j := start + 1; j < len(lines) && j <= start+evidenceLookahead; j++ {
		next := strings.TrimSpace(lines[j])

		if strings.HasPrefix(next, delimiter) && !strings.HasPrefix(next, "|---") {
			if strings.Count(next, delimiter) >= 4 {
				cells := Cells(next)
				if len(cells) > 0 && !allPlaceholders(cells) {
					return true
				}
			}
		} else if next != "" && !strings.HasPrefix(next, delimiter) && !strings.HasPrefix(next, "#") {
			break
		}
	}
	return false
}

func allPlaceholders(cells []string) bool {
	for _, c := range cells {
		if !placeholderCells[c] {
			return false
		}
	}
	return true
}

// sectionEnd returns the index of the next section header after start, or the
// document length when the section runs to the end.
func sectionEnd(lines []string, start int) int {
	for j := start + 1; j < len(lines); j++ {
		if strings.HasPrefix(strings.TrimSpace(lines[j]), "#") {
			return j
		}
	}
	return len(lines)
}

// isNoContentLine matches extractor placeholders like "(No specifications found)".
func isNoContentLine(line string) bool {
	return strings.Contains(line, "(No") && strings.Contains(strings.ToLower(line), "found")
}

// tightenBlanks caps runs of blank lines at max and strips blank lines from
// both ends.
func tightenBlanks(lines []string, max int) []string {
	out := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		if isBlank(line) {
			blanks++
			if blanks > max {
				continue
			}
		} else {
			blanks = 0
		}
		out = append(out, line)
	}
	for len(out) > 0 && isBlank(out[0]) {
		out = out[1:]
	}
	for len(out) > 0 && isBlank(out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}
