package parse

// predict expands the pending symbol of every row in completions into the
// productions of that symbol, anchored at the row's end. Nothing is
// deduplicated here; the completer compares rows by value.
func (r *run) predict(wc *WordChart, completions Section) error {
	for _, id := range completions {
		row := r.chart.Row(id)
		next, ok := row.Dotted.Next()
		if !ok {
			continue
		}
		end := row.Span.End
		for _, prod := range r.grammar.Expansions(next) {
			predicted, err := r.add(&Row{
				Dotted: DottedProduction{LHS: next, AfterDot: prod.RHS},
				Span:   Span{end, end},
			})
			if err != nil {
				return err
			}
			wc.Predict = append(wc.Predict, predicted.ID)
		}
	}
	return nil
}
