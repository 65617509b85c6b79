package parse

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/chartparse/grammar"
)

var log = commonlog.GetLogger("chartparse.parse")

// Parser runs the predict/scan/complete steps over a grammar.
// A Parser holds no per-run state and may be shared between goroutines.
type Parser struct {
	grammar    *grammar.Grammar
	privileged map[string]bool
	maxRows    int
	allStarts  bool
	spanOnly   bool
}

// New creates a parser for g.
func New(g *grammar.Grammar, opts ...Option) *Parser {
	p := &Parser{
		grammar: g,
		maxRows: DefaultMaxRows,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.privileged == nil {
		WithPrivileged(g.Lexical()...)(p)
	}
	return p
}

// Grammar returns the grammar the parser was built with.
func (p *Parser) Grammar() *grammar.Grammar {
	return p.grammar
}

// Run parses sentence with g, scanning words only for the privileged
// categories.
func Run(sentence []string, g *grammar.Grammar, privileged []string) (*Result, error) {
	return New(g, WithPrivileged(privileged...)).Parse(sentence)
}

// run is the state of a single parse.
type run struct {
	*Parser
	chart    *Chart
	sentence []string
}

// Parse builds the chart for sentence and extracts its derivations.
// A sentence without derivation is not an error; see Result.Err.
func (p *Parser) Parse(sentence []string) (*Result, error) {
	r := &run{
		Parser:   p,
		chart:    newChart(),
		sentence: sentence,
	}

	if err := r.seed(); err != nil {
		return nil, err
	}

	for i, word := range sentence {
		wc := &WordChart{}
		prev := r.chart.Words[len(r.chart.Words)-1]

		if err := r.predict(wc, prev.Complete); err != nil {
			return nil, err
		}
		if err := r.scan(wc, word); err != nil {
			return nil, err
		}
		if err := r.complete(wc); err != nil {
			return nil, err
		}
		r.chart.Words = append(r.chart.Words, wc)

		log.Debugf("position %d %q: %d predicted, %d scanned, %d completed",
			i+1, word, len(wc.Predict), len(wc.Scan), len(wc.Complete))
	}

	res := &Result{
		Sentence:    sentence,
		Start:       p.grammar.Start,
		Chart:       r.chart,
		Derivations: r.derivations(),
	}
	if res.Success() {
		log.Infof("parsed %d words into %d rows: %d derivations", len(sentence), r.chart.Len(), len(res.Derivations))
	} else {
		log.Infof("parsed %d words into %d rows: no derivation", len(sentence), r.chart.Len())
	}
	return res, nil
}

// seed places the start hypothesis as the complete section of position 0.
func (r *run) seed() error {
	start := r.grammar.Start
	prods := r.grammar.Expansions(start)
	if len(prods) == 0 {
		return fmt.Errorf("%w %q", ErrNoStartProduction, start)
	}
	if !r.allStarts {
		prods = prods[:1]
	}

	wc := &WordChart{}
	for _, prod := range prods {
		row, err := r.add(&Row{
			Dotted: DottedProduction{LHS: start, AfterDot: prod.RHS},
			Span:   Span{0, 0},
		})
		if err != nil {
			return err
		}
		wc.Complete = append(wc.Complete, row.ID)
	}
	r.chart.Words = append(r.chart.Words, wc)
	return nil
}

func (r *run) add(row *Row) (*Row, error) {
	if r.maxRows > 0 && r.chart.Len() >= r.maxRows {
		return nil, fmt.Errorf("%w: %d rows at position %d", ErrRowLimit, r.maxRows, len(r.chart.Words))
	}
	return r.chart.add(row), nil
}

// derivations returns the final complete rows covering the whole sentence.
func (r *run) derivations() []int {
	var ids []int
	n := len(r.sentence)
	last := r.chart.Words[len(r.chart.Words)-1]
	for _, id := range last.Complete {
		row := r.chart.Row(id)
		if row.Span != (Span{0, n}) {
			continue
		}
		if !r.spanOnly && (!row.Dotted.IsComplete() || row.Dotted.LHS != r.grammar.Start) {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
