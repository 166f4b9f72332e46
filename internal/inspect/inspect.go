// Package inspect reports on the structure of a normalized document and
// verifies every table row against the 3-column schema.
package inspect

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/seemantshankar/spherical/internal/normalize"
)

// Report summarizes a document's structure.
type Report struct {
	Sections  int `json:"sections"`
	Tables    int `json:"tables"`
	Rows      int `json:"rows"`
	WideRows  int `json:"wide_rows"`  // rows with more than three cells
	ShortRows int `json:"short_rows"` // rows with fewer than three cells
}

// SchemaOK reports whether every table row has exactly three cells.
func (r Report) SchemaOK() bool {
	return r.WideRows == 0 && r.ShortRows == 0
}

func (r Report) String() string {
	return fmt.Sprintf("sections=%d tables=%d rows=%d wide=%d short=%d",
		r.Sections, r.Tables, r.Rows, r.WideRows, r.ShortRows)
}

// Analyze parses the document with goldmark for structure counts and audits
// raw table rows for schema deviations.
func Analyze(content string) Report {
	var rep Report

	src := []byte(content)
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level == 2 {
				rep.Sections++
			}
		case *east.Table:
			rep.Tables++
		}
		return ast.WalkContinue, nil
	})

	// The row-width audit is textual: goldmark clips and pads cells to the
	// header width per GFM, so deviations only show in the raw lines.
	lines := normalize.ParseDocument(content).Lines
	state := normalize.Outside
	for i, line := range lines {
		lookahead := ""
		if i+1 < len(lines) {
			lookahead = lines[i+1]
		}
		state = state.Next(line, lookahead)
		if state != normalize.InTable || normalize.IsSeparatorLine(line) {
			continue
		}
		cells := normalize.Cells(line)
		if cells == nil {
			continue
		}
		rep.Rows++
		switch {
		case len(cells) > 3:
			rep.WideRows++
		case len(cells) < 3:
			rep.ShortRows++
		}
	}

	return rep
}
