package grammar

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"sync"
	"testing"
)

func TestExpansionsKeepGrammarOrder(t *testing.T) {
	g := Toy()

	got := g.Expansions("VP")
	want := [][]string{{"V"}, {"V", "NP"}, {"V", "VP"}, {"VP", "PP"}}
	if len(got) != len(want) {
		t.Fatalf("Expansions(VP) returned %d productions, want %d", len(got), len(want))
	}
	for i, p := range got {
		if p.LHS != "VP" || !reflect.DeepEqual(p.RHS, want[i]) {
			t.Errorf("Expansions(VP)[%d] = %s, want VP -> %v", i, p, want[i])
		}
	}

	if prods := g.Expansions("X"); prods != nil {
		t.Errorf("Expansions(X) = %v, want nil", prods)
	}
}

func TestBegins(t *testing.T) {
	g := Toy()

	tests := []struct {
		lhs, word string
		want      bool
	}{
		{"N", "fish", true},
		{"V", "fish", true},
		{"P", "fish", false},
		{"N", "in", false},
		{"VP", "V", true},
		{"S", "NP", true},
		{"X", "fish", false},
	}
	for _, tt := range tests {
		if got := g.Begins(tt.lhs, tt.word); got != tt.want {
			t.Errorf("Begins(%q, %q) = %v, want %v", tt.lhs, tt.word, got, tt.want)
		}
	}
}

func TestLexical(t *testing.T) {
	got := Toy().Lexical()
	want := []string{"N", "P", "V"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lexical() = %v, want %v", got, want)
	}
}

func TestGrammarWithoutIndex(t *testing.T) {
	g := &Grammar{
		Start: "S",
		Productions: []Production{
			{LHS: "S", RHS: []string{"a"}},
		},
	}
	if !g.Has("S") {
		t.Error("Has(S) = false on a grammar built without New")
	}
}

func TestLoadFileMatchesToy(t *testing.T) {
	g, err := LoadFile("testdata/toy.ebnf", "")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	toy := Toy()
	if g.Start != toy.Start {
		t.Errorf("Start = %q, want %q", g.Start, toy.Start)
	}
	if !reflect.DeepEqual(g.Productions, toy.Productions) {
		t.Errorf("productions differ:\n got:\n%s\nwant:\n%s", g, toy)
	}
	// the file declares nonterminals in its own order
	got := append([]string{}, g.Nonterminals...)
	want := append([]string{}, toy.Nonterminals...)
	sort.Strings(got)
	sort.Strings(want)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Nonterminals = %v, want the set %v", g.Nonterminals, toy.Nonterminals)
	}
	if len(g.Terminals) != len(toy.Terminals) {
		t.Errorf("Terminals = %v, want the %d toy terminals", g.Terminals, len(toy.Terminals))
	}
}

func TestParseExpandsOptionsAndGroups(t *testing.T) {
	src := `
		S  = NP [ Adv ] ( V | Aux V ) .
		NP = "they" .
		Adv = "often" .
		V  = "fish" .
		Aux = "can" .
	`
	g, err := Parse("inline", strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	var got [][]string
	for _, p := range g.Expansions("S") {
		got = append(got, p.RHS)
	}
	want := [][]string{
		{"NP", "Adv", "V"},
		{"NP", "Adv", "Aux", "V"},
		{"NP", "V"},
		{"NP", "Aux", "V"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("S expansions = %v, want %v", got, want)
	}
}

func TestParseEmptyProduction(t *testing.T) {
	g, err := Parse("inline", strings.NewReader(`S = A "x" . A = .`), "S")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	prods := g.Expansions("A")
	if len(prods) != 1 || len(prods[0].RHS) != 0 {
		t.Errorf("A expansions = %v, want one empty production", prods)
	}
}

func TestParseReportsConversionErrors(t *testing.T) {
	_, err := LoadFile("testdata/bad.ebnf", "S")
	if err == nil {
		t.Fatal("expected an error")
	}

	var errs LoadErrors
	if !errors.As(err, &errs) {
		t.Fatalf("error %v is not LoadErrors", err)
	}
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want 2: %v", len(errs), errs)
	}
	if errs[0].Line != 2 || !strings.Contains(errs[0].Msg, "repetition") {
		t.Errorf("errs[0] = %v, want repetition error on line 2", errs[0])
	}
	if errs[1].Line != 3 || errs[1].Column != 8 || !strings.Contains(errs[1].Msg, "Object") {
		t.Errorf("errs[1] = %v, want undefined Object at 3:8", errs[1])
	}
}

func TestParseMissingStart(t *testing.T) {
	_, err := Parse("inline", strings.NewReader(`A = "a" .`), "S")
	var errs LoadErrors
	if !errors.As(err, &errs) || len(errs) != 1 {
		t.Fatalf("err = %v, want a single LoadError", err)
	}
	if !strings.Contains(errs[0].Msg, `"S"`) {
		t.Errorf("message %q does not name the start symbol", errs[0].Msg)
	}
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	_, err := Parse("broken.ebnf", strings.NewReader("S = NP VP\nNP = \"a\" ."), "")
	var errs LoadErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		t.Fatalf("err = %v, want LoadErrors", err)
	}
	if errs[0].Line == 0 {
		t.Errorf("syntax error %v has no line", errs[0])
	}
	if errs[0].Filename != "broken.ebnf" {
		t.Errorf("Filename = %q, want broken.ebnf", errs[0].Filename)
	}
}

func TestSplitPosition(t *testing.T) {
	le := splitPosition("g.ebnf", "g.ebnf:4:12: expected '.'")
	if le.Line != 4 || le.Column != 12 || le.Msg != "expected '.'" {
		t.Errorf("splitPosition = %+v", le)
	}

	le = splitPosition("g.ebnf", "something odd")
	if le.Line != 0 || le.Msg != "something odd" {
		t.Errorf("splitPosition without position = %+v", le)
	}
}

func TestParseKeepsQuoteTerminal(t *testing.T) {
	src := `Quote = "\"" | "'" .`
	g, err := Parse("inline", strings.NewReader(src), "")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := []string{`"`, "'"}; !reflect.DeepEqual(g.Terminals, want) {
		t.Errorf("Terminals = %q, want %q", g.Terminals, want)
	}
	if !g.Begins("Quote", `"`) {
		t.Error(`Begins(Quote, ") = false`)
	}
}

func TestConcurrentLookup(t *testing.T) {
	g := &Grammar{
		Start: "S",
		Productions: []Production{
			{LHS: "S", RHS: []string{"NP", "VP"}},
			{LHS: "NP", RHS: []string{"they"}},
			{LHS: "VP", RHS: []string{"fish"}},
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if len(g.Expansions("S")) != 1 || !g.Begins("NP", "they") {
				t.Error("lookup on a shared grammar returned wrong productions")
			}
		}()
	}
	wg.Wait()
}
