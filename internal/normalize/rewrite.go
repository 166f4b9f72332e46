package normalize

import "strings"

// TableResult reports what the table rewriter changed.
type TableResult struct {
	SeparatorsReset int `json:"separators_reset"`
	RowsMerged      int `json:"rows_merged"`
}

// FixTables rewrites every table region in content so all rows conform to the
// 3-column schema. The document is walked once, strictly forward; lines
// outside table regions pass through untouched. Running FixTables on its own
// output is a no-op.
func FixTables(content string) (string, TableResult) {
	doc := ParseDocument(content)
	var res TableResult

	state := Outside
	for i, line := range doc.Lines {
		lookahead := ""
		if i+1 < len(doc.Lines) {
			lookahead = doc.Lines[i+1]
		}
		state = state.Next(line, lookahead)
		if state != InTable {
			continue
		}

		fixed := NormalizeRow(line)
		if fixed != line {
			if IsSeparatorLine(line) {
				res.SeparatorsReset++
			} else {
				res.RowsMerged++
			}
		}
		doc.Lines[i] = strings.TrimRight(fixed, " \t")
	}

	return doc.String(), res
}
