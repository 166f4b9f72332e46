package doctree

import "strings"

// Markdown renders the tree as a markdown document: the title as an h1,
// each node as a heading at its nesting depth, text blocks separated by
// blank lines.
func (t *DocTree) Markdown() string {
	var buf strings.Builder

	if t.Title != "" {
		buf.WriteString("# " + t.Title + "\n")
	}
	for _, child := range t.Children {
		renderNode(&buf, child, 2)
	}

	out := strings.TrimRight(buf.String(), "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}

func renderNode(buf *strings.Builder, node *DocNode, level int) {
	if node.Title != "" {
		if level > 6 {
			level = 6
		}
		buf.WriteString("\n" + strings.Repeat("#", level) + " " + node.Title + "\n")
	}
	if node.Text != "" {
		buf.WriteString("\n" + strings.TrimRight(node.Text, "\n") + "\n")
	}
	for _, child := range node.Children {
		renderNode(buf, child, level+1)
	}
}
