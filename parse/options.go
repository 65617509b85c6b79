package parse

// DefaultMaxRows bounds the chart of a single run.
const DefaultMaxRows = 100000

type Option func(*Parser)

// WithPrivileged sets the lexical categories the scanner may consume words
// for. Without it the grammar's lexical nonterminals are used.
func WithPrivileged(names ...string) Option {
	return func(p *Parser) {
		p.privileged = make(map[string]bool, len(names))
		for _, n := range names {
			p.privileged[n] = true
		}
	}
}

// WithMaxRows sets the row ceiling; 0 disables it.
func WithMaxRows(n int) Option {
	return func(p *Parser) {
		p.maxRows = n
	}
}

// WithAllStartProductions seeds one row per production of the start symbol
// instead of only the first one.
func WithAllStartProductions() Option {
	return func(p *Parser) {
		p.allStarts = true
	}
}

// WithSpanOnlyDerivations accepts any final row spanning the whole sentence
// as a derivation, whatever its lhs and dot position.
func WithSpanOnlyDerivations() Option {
	return func(p *Parser) {
		p.spanOnly = true
	}
}
