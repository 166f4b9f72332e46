// Package normalize repairs markdown produced by upstream document
// extraction. Tables that drifted from the fixed Category/Specification/Value
// schema are reconciled without losing cell data, sections that carry no
// usable data are pruned, and header/blank-line spacing is regularized.
package normalize

// Summary aggregates what a full normalize run changed.
type Summary struct {
	Tables   TableResult   `json:"tables"`
	Sections SectionResult `json:"sections"`
	Spacing  SpacingResult `json:"spacing"`
}

// Run applies the full pipeline in order: table rewrite, section pruning,
// spacing. Stages are strictly sequential; each consumes the previous stage's
// complete output.
func Run(content string) (string, Summary) {
	var sum Summary
	content, sum.Tables = FixTables(content)
	content, sum.Sections = CleanSections(content)
	content, sum.Spacing = FixSpacing(content)
	return content, sum
}
