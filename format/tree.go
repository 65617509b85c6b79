package format

import (
	"strings"

	"github.com/dhamidi/chartparse/parse"
)

// Bracket renders a derivation tree in labelled bracket notation,
// e.g. [S [NP [N they]] [VP [V fish]]].
func Bracket(n *parse.Node) string {
	var sb strings.Builder
	writeBracket(&sb, n)
	return sb.String()
}

func writeBracket(sb *strings.Builder, n *parse.Node) {
	if n.IsLeaf() {
		sb.WriteString(n.Label)
		return
	}
	sb.WriteByte('[')
	sb.WriteString(n.Label)
	for _, c := range n.Children {
		sb.WriteByte(' ')
		writeBracket(sb, c)
	}
	sb.WriteByte(']')
}

// Indent renders a derivation tree with one node per line.
func Indent(n *parse.Node) string {
	var sb strings.Builder
	writeIndent(&sb, n, 0)
	return sb.String()
}

func writeIndent(sb *strings.Builder, n *parse.Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Label)
	if !n.IsLeaf() {
		sb.WriteString(" ")
		sb.WriteString(n.Span.String())
	}
	sb.WriteByte('\n')
	for _, c := range n.Children {
		writeIndent(sb, c, depth+1)
	}
}
