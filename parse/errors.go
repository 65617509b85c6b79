package parse

import "errors"

var (
	// ErrNoStartProduction means the grammar cannot be used at all: its start
	// symbol has no production.
	ErrNoStartProduction = errors.New("no production for start symbol")

	// ErrRowLimit means the row ceiling was reached before the chart was
	// closed, usually because of a cyclic grammar.
	ErrRowLimit = errors.New("row limit exceeded")

	// ErrNoDerivation means the chart holds no row covering the whole sentence.
	ErrNoDerivation = errors.New("no derivation found")
)
