package parse

// scan consumes word for the predicted rows waiting on a privileged
// category that has a production starting with word. Each category yields
// at most one lexical row per position, even when several of its
// productions match.
func (r *run) scan(wc *WordChart, word string) error {
	scanned := make(map[string]bool)
	for _, id := range wc.Predict {
		row := r.chart.Row(id)
		next, ok := row.Dotted.Next()
		if !ok || !r.privileged[next] || scanned[next] {
			continue
		}
		if !r.grammar.Begins(next, word) {
			continue
		}
		scanned[next] = true

		end := row.Span.End
		lexical, err := r.add(&Row{
			Dotted: DottedProduction{LHS: next, BeforeDot: []string{word}},
			Span:   Span{end, end + 1},
		})
		if err != nil {
			return err
		}
		wc.Scan = append(wc.Scan, lexical.ID)
	}
	return nil
}
