// Package parse implements a chart parser in the Earley family that records
// every intermediate row together with the provenance needed to rebuild
// each derivation.
package parse

import (
	"fmt"
	"strings"
)

// Span is the half-open token range [Start, End) a row covers.
type Span struct {
	Start int
	End   int
}

func (s Span) String() string {
	return fmt.Sprintf("[%d-%d]", s.Start, s.End)
}

// DottedProduction is a production split into the recognized prefix and the
// pending suffix.
type DottedProduction struct {
	LHS       string
	BeforeDot []string
	AfterDot  []string
}

// IsComplete reports whether nothing is pending after the dot.
func (d DottedProduction) IsComplete() bool {
	return len(d.AfterDot) == 0
}

// Next returns the pending symbol right after the dot.
func (d DottedProduction) Next() (string, bool) {
	if len(d.AfterDot) == 0 {
		return "", false
	}
	return d.AfterDot[0], true
}

// Advance moves the dot over the pending symbol.
func (d DottedProduction) Advance() DottedProduction {
	before := make([]string, 0, len(d.BeforeDot)+1)
	before = append(before, d.BeforeDot...)
	before = append(before, d.AfterDot[0])
	return DottedProduction{
		LHS:       d.LHS,
		BeforeDot: before,
		AfterDot:  d.AfterDot[1:],
	}
}

// String renders the production as "lhs -> before . after".
func (d DottedProduction) String() string {
	parts := make([]string, 0, len(d.BeforeDot)+len(d.AfterDot)+3)
	parts = append(parts, d.LHS, "->")
	parts = append(parts, d.BeforeDot...)
	parts = append(parts, ".")
	parts = append(parts, d.AfterDot...)
	return strings.Join(parts, " ")
}

// Row is one entry of the chart. History lists, in consumption order, the
// ids of the completed rows folded into BeforeDot. Lexical rows produced by
// the scanner carry the word in BeforeDot and no history.
type Row struct {
	ID      int
	Dotted  DottedProduction
	Span    Span
	History []int
}

func (r *Row) String() string {
	return fmt.Sprintf("%d | %s | %s | %v", r.ID, r.Dotted, r.Span, r.History)
}

// key identifies a row by value, ignoring its id.
func (r *Row) key() string {
	return fmt.Sprintf("%s\x00%q\x00%q\x00%d:%d\x00%v",
		r.Dotted.LHS, r.Dotted.BeforeDot, r.Dotted.AfterDot, r.Span.Start, r.Span.End, r.History)
}

// Section is an ordered list of row ids produced by one step at one position.
type Section []int

// WordChart groups the rows created at one position.
type WordChart struct {
	Predict  Section
	Scan     Section
	Complete Section
}

// Sections returns predict, scan and complete in that order.
func (w *WordChart) Sections() []Section {
	return []Section{w.Predict, w.Scan, w.Complete}
}

// Chart owns every row of a parse run. Rows live in an append-only arena
// indexed by id; word charts refer to them by id.
type Chart struct {
	Words []*WordChart

	rows  []*Row
	byEnd map[int][]int
}

func newChart() *Chart {
	return &Chart{byEnd: make(map[int][]int)}
}

func (c *Chart) add(row *Row) *Row {
	row.ID = len(c.rows)
	c.rows = append(c.rows, row)
	c.byEnd[row.Span.End] = append(c.byEnd[row.Span.End], row.ID)
	return row
}

// endingAt returns the ids of the rows whose span ends at pos, in creation
// order. The returned slice is a snapshot: later insertions do not show up.
func (c *Chart) endingAt(pos int) []int {
	ids := c.byEnd[pos]
	return ids[:len(ids):len(ids)]
}

// Row returns the row with the given id, or nil.
func (c *Chart) Row(id int) *Row {
	if id < 0 || id >= len(c.rows) {
		return nil
	}
	return c.rows[id]
}

// Rows returns every row in creation order.
func (c *Chart) Rows() []*Row {
	return c.rows
}

// Len returns the number of rows.
func (c *Chart) Len() int {
	return len(c.rows)
}

// Resolve maps a section to its rows.
func (c *Chart) Resolve(s Section) []*Row {
	rows := make([]*Row, len(s))
	for i, id := range s {
		rows[i] = c.rows[id]
	}
	return rows
}
