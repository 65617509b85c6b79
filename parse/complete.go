package parse

// complete closes wc against the chart built so far. Starting from the
// lexical rows of the position, every completed row is folded into each row
// that ends where it starts and waits for its category. Newly completed
// rows are pushed back on the worklist until nothing new appears.
//
// Rows are compared by value (production, dot, span and history) against
// the complete section of wc only. Equal constituents reached through
// different histories are kept apart so each derivation stays countable.
func (r *run) complete(wc *WordChart) error {
	seen := make(map[string]bool)
	worklist := make([]int, len(wc.Scan))
	copy(worklist, wc.Scan)

	for len(worklist) > 0 {
		done := r.chart.Row(worklist[len(worklist)-1])
		worklist = worklist[:len(worklist)-1]

		for _, id := range r.chart.endingAt(done.Span.Start) {
			waiting := r.chart.Row(id)
			next, ok := waiting.Dotted.Next()
			if !ok || next != done.Dotted.LHS {
				continue
			}

			history := make([]int, 0, len(waiting.History)+1)
			history = append(history, waiting.History...)
			history = append(history, done.ID)

			candidate := &Row{
				Dotted:  waiting.Dotted.Advance(),
				Span:    Span{waiting.Span.Start, done.Span.End},
				History: history,
			}
			key := candidate.key()
			if seen[key] {
				continue
			}

			row, err := r.add(candidate)
			if err != nil {
				return err
			}
			seen[key] = true
			wc.Complete = append(wc.Complete, row.ID)

			if row.Dotted.IsComplete() {
				worklist = append(worklist, row.ID)
			}
		}
	}
	return nil
}
