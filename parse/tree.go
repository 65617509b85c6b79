package parse

import "fmt"

// Node is a derivation tree node. Interior nodes carry the row they were
// built from; leaves carry a word and have Row set to -1.
type Node struct {
	Label    string
	Row      int
	Span     Span
	Children []*Node
}

// IsLeaf reports whether n is a word.
func (n *Node) IsLeaf() bool {
	return n.Row < 0
}

// Tree rebuilds the tree rooted at the given row by following row history.
// Symbols before the dot map one to one onto history entries; symbols with
// no history entry are the words consumed by the scanner.
func (r *Result) Tree(id int) (*Node, error) {
	row := r.Chart.Row(id)
	if row == nil {
		return nil, fmt.Errorf("no row %d", id)
	}

	node := &Node{
		Label: row.Dotted.LHS,
		Row:   row.ID,
		Span:  row.Span,
	}
	pos := row.Span.Start
	for i, sym := range row.Dotted.BeforeDot {
		if i >= len(row.History) {
			node.Children = append(node.Children, &Node{
				Label: sym,
				Row:   -1,
				Span:  Span{pos, pos + 1},
			})
			pos++
			continue
		}
		childID := row.History[i]
		if childID >= row.ID {
			return nil, fmt.Errorf("row %d refers to later row %d", row.ID, childID)
		}
		child, err := r.Tree(childID)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
		pos = child.Span.End
	}
	return node, nil
}
