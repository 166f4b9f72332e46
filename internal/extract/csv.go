package extract

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/seemantshankar/spherical/internal/doctree"
)

// CSVExtractor handles CSV files. The sheet is rendered straight into a
// markdown pipe table under a Specifications heading, so the table rewriter
// downstream reconciles it to the 3-column schema.
type CSVExtractor struct{}

func (e *CSVExtractor) Extract(r io.Reader, filename string) (*doctree.DocTree, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}

	tree := &doctree.DocTree{
		Title: strings.TrimSuffix(filename, ".csv"),
	}

	if len(records) == 0 {
		return tree, nil
	}

	var table strings.Builder
	writeRow(&table, records[0])
	table.WriteString("|" + strings.Repeat("---|", len(records[0])) + "\n")
	for _, row := range records[1:] {
		writeRow(&table, row)
	}

	tree.Children = []*doctree.DocNode{{
		Title: "Specifications",
		Text:  strings.TrimRight(table.String(), "\n"),
	}}

	return tree, nil
}

func writeRow(buf *strings.Builder, cells []string) {
	buf.WriteString("|")
	for _, cell := range cells {
		buf.WriteString(" " + cleanText(strings.TrimSpace(cell)) + " |")
	}
	buf.WriteString("\n")
}
