package normalize

import (
	"strings"
	"testing"
)

func TestFixTables_RewritesRegion(t *testing.T) {
	input := strings.Join([]string{
		"## Specifications",
		"",
		"| Category | Specification | Value | Unit |",
		"|---|---|---|---|",
		"| GPU | Memory | 16 | GB |",
		"| CPU | Cores | 8 |",
		"",
		"Trailing prose.",
	}, "\n")

	got, res := FixTables(input)
	lines := strings.Split(got, "\n")

	if lines[2] != "| Category | Specification | Value - Unit |" {
		t.Errorf("header row: got %q", lines[2])
	}
	if lines[3] != CanonicalSeparator {
		t.Errorf("separator: got %q, want %q", lines[3], CanonicalSeparator)
	}
	if lines[4] != "| GPU | Memory | 16 - GB |" {
		t.Errorf("data row: got %q", lines[4])
	}
	if lines[5] != "| CPU | Cores | 8 |" {
		t.Errorf("conforming row changed: got %q", lines[5])
	}
	if lines[7] != "Trailing prose." {
		t.Errorf("prose changed: got %q", lines[7])
	}

	if res.SeparatorsReset != 1 {
		t.Errorf("SeparatorsReset = %d, want 1", res.SeparatorsReset)
	}
	if res.RowsMerged != 2 {
		t.Errorf("RowsMerged = %d, want 2", res.RowsMerged)
	}
}

func TestFixTables_InlinePipeIsProse(t *testing.T) {
	input := "Use the a | b syntax for alternation.\n\nNext paragraph."
	got, res := FixTables(input)
	if got != input {
		t.Errorf("prose with inline pipe was rewritten: %q", got)
	}
	if res.RowsMerged != 0 || res.SeparatorsReset != 0 {
		t.Errorf("unexpected changes recorded: %+v", res)
	}
}

func TestFixTables_RegionEndsAtProse(t *testing.T) {
	input := strings.Join([]string{
		"| Head | Mid | Tail |",
		"|---|---|---|",
		"| a | b | c | d |",
		"Prose now | with pipe | again | more |",
	}, "\n")

	got, _ := FixTables(input)
	lines := strings.Split(got, "\n")

	if lines[2] != "| a | b | c - d |" {
		t.Errorf("in-region row not fixed: %q", lines[2])
	}
	// The region only ends at a line without the delimiter, but a
	// pipe-bearing line that is not delimiter-wrapped is never rewritten.
	if lines[3] != "Prose now | with pipe | again | more |" {
		t.Errorf("post-region line changed: %q", lines[3])
	}
}

func TestFixTables_MissingTrailingDelimiterKeepsLastCell(t *testing.T) {
	input := strings.Join([]string{
		"| Category | Specification | Value |",
		"|---|---|---|",
		"| a | b | c | d | e",
		"",
	}, "\n")

	got, res := FixTables(input)
	lines := strings.Split(got, "\n")

	if lines[2] != "| a | b | c - d - e |" {
		t.Errorf("unclosed row lost data: got %q, want %q", lines[2], "| a | b | c - d - e |")
	}
	if res.RowsMerged != 1 {
		t.Errorf("RowsMerged = %d, want 1", res.RowsMerged)
	}
}

func TestFixTables_Idempotent(t *testing.T) {
	input := strings.Join([]string{
		"# Doc",
		"",
		"| Category | Specification | Value | Extra | More |",
		"|-----|-----|-----|-----|-----|",
		"| Engine | Power | 455 | hp |",
		"| Battery | Capacity | 107 |",
		"",
		"Done.",
	}, "\n")

	once, _ := FixTables(input)
	twice, res := FixTables(once)
	if once != twice {
		t.Errorf("not a fixed point:\nfirst:  %q\nsecond: %q", once, twice)
	}
	if res.RowsMerged != 0 || res.SeparatorsReset != 0 {
		t.Errorf("second run recorded changes: %+v", res)
	}
}

func TestFixTables_CRLFPreserved(t *testing.T) {
	input := "| a | b | c | d |\r\n|---|---|---|---|\r\n| w | x | y | z |\r\n"
	got, _ := FixTables(input)
	if !strings.Contains(got, "\r\n") {
		t.Error("CRLF convention lost")
	}
	if !strings.Contains(got, "| w | x | y - z |") {
		t.Errorf("row not fixed: %q", got)
	}
}

func TestFixTables_TableAtEndOfDocument(t *testing.T) {
	input := "| a | b | c |\n|---|---|---|\n| 1 | 2 | 3 | 4 |"
	got, _ := FixTables(input)
	if !strings.HasSuffix(got, "| 1 | 2 | 3 - 4 |") {
		t.Errorf("final row not fixed: %q", got)
	}
}
