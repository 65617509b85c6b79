// Package grammar holds the context-free grammars consumed by the chart parser.
package grammar

import (
	"fmt"
	"strings"
	"sync"
)

// Production rewrites a nonterminal into a sequence of symbols.
type Production struct {
	LHS string
	RHS []string
}

func (p Production) String() string {
	return fmt.Sprintf("%s -> %s", p.LHS, strings.Join(p.RHS, " "))
}

// Grammar is a read-only table of vocabularies, a start symbol and productions.
// Production order is significant: it fixes the order in which the parser
// predicts alternatives and therefore the row numbering.
// Productions are indexed on first lookup and must not change afterwards;
// from then on a Grammar is safe for concurrent use.
type Grammar struct {
	Nonterminals []string
	Terminals    []string
	Start        string
	Productions  []Production

	once  sync.Once
	byLHS map[string][]int
}

// New builds a grammar and indexes its productions by lhs.
func New(nonterminals, terminals []string, start string, productions []Production) *Grammar {
	g := &Grammar{
		Nonterminals: nonterminals,
		Terminals:    terminals,
		Start:        start,
		Productions:  productions,
	}
	g.once.Do(g.index)
	return g
}

func (g *Grammar) index() {
	g.byLHS = make(map[string][]int)
	for i, p := range g.Productions {
		g.byLHS[p.LHS] = append(g.byLHS[p.LHS], i)
	}
}

func (g *Grammar) lookup(lhs string) []int {
	g.once.Do(g.index)
	return g.byLHS[lhs]
}

// Expansions returns the productions of lhs in grammar order.
func (g *Grammar) Expansions(lhs string) []Production {
	idx := g.lookup(lhs)
	if len(idx) == 0 {
		return nil
	}
	prods := make([]Production, len(idx))
	for i, j := range idx {
		prods[i] = g.Productions[j]
	}
	return prods
}

// Begins reports whether some production of lhs starts with word.
// Only the first rhs symbol is compared.
func (g *Grammar) Begins(lhs, word string) bool {
	for _, j := range g.lookup(lhs) {
		rhs := g.Productions[j].RHS
		if len(rhs) > 0 && rhs[0] == word {
			return true
		}
	}
	return false
}

// Has reports whether lhs has at least one production.
func (g *Grammar) Has(lhs string) bool {
	return len(g.lookup(lhs)) > 0
}

// IsNonterminal reports whether name appears in the nonterminal vocabulary
// or as the lhs of a production.
func (g *Grammar) IsNonterminal(name string) bool {
	if g.Has(name) {
		return true
	}
	for _, nt := range g.Nonterminals {
		if nt == name {
			return true
		}
	}
	return false
}

// Lexical returns the nonterminals every production of which rewrites to a
// single terminal. These are the categories the scanner may consume words for.
func (g *Grammar) Lexical() []string {
	var lexical []string
	seen := make(map[string]bool)
	for _, p := range g.Productions {
		if seen[p.LHS] {
			continue
		}
		seen[p.LHS] = true
		ok := true
		for _, alt := range g.Expansions(p.LHS) {
			if len(alt.RHS) != 1 || g.IsNonterminal(alt.RHS[0]) {
				ok = false
				break
			}
		}
		if ok {
			lexical = append(lexical, p.LHS)
		}
	}
	return lexical
}

// String renders one production per line.
func (g *Grammar) String() string {
	var sb strings.Builder
	for _, p := range g.Productions {
		sb.WriteString(p.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
