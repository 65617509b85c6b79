package grammar

// Toy returns the classic ambiguous English fragment used to demonstrate
// chart parsing ("they can fish in rivers").
func Toy() *Grammar {
	return New(
		[]string{"S", "NP", "VP", "PP", "N", "V", "P"},
		[]string{"can", "fish", "in", "rivers", "they", "december"},
		"S",
		[]Production{
			{LHS: "S", RHS: []string{"NP", "VP"}},
			{LHS: "NP", RHS: []string{"N"}},
			{LHS: "NP", RHS: []string{"N", "PP"}},
			{LHS: "PP", RHS: []string{"P", "NP"}},
			{LHS: "VP", RHS: []string{"V"}},
			{LHS: "VP", RHS: []string{"V", "NP"}},
			{LHS: "VP", RHS: []string{"V", "VP"}},
			{LHS: "VP", RHS: []string{"VP", "PP"}},
			{LHS: "N", RHS: []string{"can"}},
			{LHS: "N", RHS: []string{"fish"}},
			{LHS: "N", RHS: []string{"rivers"}},
			{LHS: "N", RHS: []string{"they"}},
			{LHS: "N", RHS: []string{"december"}},
			{LHS: "P", RHS: []string{"in"}},
			{LHS: "V", RHS: []string{"fish"}},
			{LHS: "V", RHS: []string{"can"}},
		},
	)
}
