package parse

import (
	"fmt"
	"strings"
)

// Result is the outcome of one parse: the derivation row ids and the full
// chart they were taken from.
type Result struct {
	Sentence    []string
	Start       string
	Derivations []int
	Chart       *Chart
}

// Success reports whether at least one derivation was found.
func (r *Result) Success() bool {
	return len(r.Derivations) > 0
}

// Err returns an error wrapping ErrNoDerivation when the parse failed.
func (r *Result) Err() error {
	if r.Success() {
		return nil
	}
	return fmt.Errorf("%w for %q", ErrNoDerivation, strings.Join(r.Sentence, " "))
}

// Row returns the row with the given id, or nil.
func (r *Result) Row(id int) *Row {
	return r.Chart.Row(id)
}

// Rows returns every row in creation order.
func (r *Result) Rows() []*Row {
	return r.Chart.Rows()
}

// Trees rebuilds the tree of every derivation.
func (r *Result) Trees() ([]*Node, error) {
	trees := make([]*Node, 0, len(r.Derivations))
	for _, id := range r.Derivations {
		n, err := r.Tree(id)
		if err != nil {
			return nil, err
		}
		trees = append(trees, n)
	}
	return trees, nil
}
