package extract

import (
	"strings"
	"testing"

	"github.com/seemantshankar/spherical/internal/normalize"
)

func TestCSVExtractor_RendersPipeTable(t *testing.T) {
	input := "Category,Specification,Value,Unit\nGPU,Memory,16,GB\nCPU,Cores,8,\n"
	e := &CSVExtractor{}
	tree, err := e.Extract(strings.NewReader(input), "specs.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "specs" {
		t.Errorf("expected title %q, got %q", "specs", tree.Title)
	}
	if len(tree.Children) != 1 || tree.Children[0].Title != "Specifications" {
		t.Fatalf("expected one Specifications section, got %+v", tree.Children)
	}

	lines := strings.Split(tree.Children[0].Text, "\n")
	if lines[0] != "| Category | Specification | Value | Unit |" {
		t.Errorf("header row: got %q", lines[0])
	}
	if lines[1] != "|---|---|---|---|" {
		t.Errorf("separator row: got %q", lines[1])
	}
	if lines[2] != "| GPU | Memory | 16 | GB |" {
		t.Errorf("data row: got %q", lines[2])
	}
}

func TestCSVExtractor_FeedsTableRewriter(t *testing.T) {
	input := "Category,Specification,Value,Unit\nGPU,Memory,16,GB\n"
	e := &CSVExtractor{}
	tree, err := e.Extract(strings.NewReader(input), "specs.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fixed, _ := normalize.FixTables(tree.Markdown())
	if !strings.Contains(fixed, normalize.CanonicalSeparator) {
		t.Errorf("separator not canonicalized:\n%s", fixed)
	}
	if !strings.Contains(fixed, "| GPU | Memory | 16 - GB |") {
		t.Errorf("row not reconciled to 3 columns:\n%s", fixed)
	}
}

func TestCSVExtractor_EmptyInput(t *testing.T) {
	e := &CSVExtractor{}
	tree, err := e.Extract(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected no children, got %d", len(tree.Children))
	}
}
