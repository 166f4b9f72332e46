package extract

import (
	"strings"
	"testing"
)

func TestTextExtractor_BasicParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	e := &TextExtractor{}
	tree, err := e.Extract(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tree.Title != "notes" {
		t.Errorf("expected title %q, got %q", "notes", tree.Title)
	}
	if len(tree.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(tree.Children))
	}

	want := []string{
		"First paragraph line one.\nFirst paragraph line two.",
		"Second paragraph.",
		"Third paragraph.",
	}
	for i, w := range want {
		if tree.Children[i].Text != w {
			t.Errorf("child[%d]: expected %q, got %q", i, w, tree.Children[i].Text)
		}
	}
}

func TestTextExtractor_EmptyInput(t *testing.T) {
	e := &TextExtractor{}
	tree, err := e.Extract(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 0 {
		t.Errorf("expected 0 children for empty input, got %d", len(tree.Children))
	}
}

func TestTextExtractor_StripsControlCharacters(t *testing.T) {
	input := "Spec\x00 value\x07 here."
	e := &TextExtractor{}
	tree, err := e.Extract(strings.NewReader(input), "dirty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tree.Children) != 1 {
		t.Fatalf("expected 1 child, got %d", len(tree.Children))
	}
	if tree.Children[0].Text != "Spec value here." {
		t.Errorf("control characters survived: %q", tree.Children[0].Text)
	}
}

func TestForFile_Dispatch(t *testing.T) {
	tests := []struct {
		filename string
		ok       bool
	}{
		{"doc.pdf", true},
		{"doc.docx", true},
		{"page.html", true},
		{"page.htm", true},
		{"sheet.csv", true},
		{"notes.txt", true},
		{"notes.md", false},
		{"archive.zip", false},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if tt.ok && err != nil {
			t.Errorf("%s: unexpected error: %v", tt.filename, err)
		}
		if !tt.ok && err == nil {
			t.Errorf("%s: expected unsupported-extension error", tt.filename)
		}
		if got := IsSupportedExtension(tt.filename); got != tt.ok {
			t.Errorf("IsSupportedExtension(%s) = %v, want %v", tt.filename, got, tt.ok)
		}
	}
}
