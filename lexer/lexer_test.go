package lexer

import (
	"reflect"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"
)

func TestFields(t *testing.T) {
	got := Fields("  they can\tfish \n")
	want := []string{"they", "can", "fish"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields = %v, want %v", got, want)
	}
}

func TestWords(t *testing.T) {
	l, err := LoadFile("testdata/words.ebnf")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	got, err := l.Words("they can,  fish")
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	want := []string{"they", "can", ",", "fish"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestTokenizePositions(t *testing.T) {
	l, err := LoadFile("testdata/words.ebnf")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	tokens, err := l.Tokenize("they can")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3: %v", len(tokens), tokens)
	}
	last := tokens[2]
	if last.Kind != "Word" || last.Literal != "can" || last.Position.Column != 6 {
		t.Errorf("last token = %v, want Word \"can\" at column 6", last)
	}
}

func TestSetSkipKinds(t *testing.T) {
	l, err := LoadFile("testdata/words.ebnf")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	l.SetSkipKinds("WhiteSpace", "Comma")

	got, err := l.Words("they, fish")
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if want := []string{"they", "fish"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestUnmatchedInput(t *testing.T) {
	l, err := LoadFile("testdata/words.ebnf")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	_, err = l.Words("they Fish")
	if err == nil {
		t.Fatal("expected an error for an upper-case letter")
	}
	if !strings.Contains(err.Error(), "1:6") {
		t.Errorf("error %q does not carry the position", err)
	}
}

func mustGrammar(t *testing.T, src string) ebnf.Grammar {
	t.Helper()
	g, err := ebnf.Parse("inline", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ebnf.Parse: %v", err)
	}
	return g
}

func TestSingleCharacterTokens(t *testing.T) {
	l, err := LoadFile("testdata/words.ebnf")
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	tokens, err := l.Tokenize("a b")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	want := []Token{
		{Kind: "Word", Literal: "a", Position: Position{Offset: 0, Line: 1, Column: 1}},
		{Kind: "WhiteSpace", Literal: " ", Position: Position{Offset: 1, Line: 1, Column: 2}},
		{Kind: "Word", Literal: "b", Position: Position{Offset: 2, Line: 1, Column: 3}},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Tokenize = %v, want %v", tokens, want)
	}
}

func TestOptionalAndRepeatedParts(t *testing.T) {
	l := New(mustGrammar(t, `
		Number     = digit { digit } [ "." digit { digit } ] .
		WhiteSpace = " " .
		digit      = "0" … "9" .
	`))

	got, err := l.Words("7 3.14 42")
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if want := []string{"7", "3.14", "42"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}

func TestQuoteToken(t *testing.T) {
	l := New(mustGrammar(t, `
		Quote = "\"" .
		Word  = "fish" .
	`))

	got, err := l.Words(`"fish"`)
	if err != nil {
		t.Fatalf("Words: %v", err)
	}
	if want := []string{`"`, "fish", `"`}; !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %q, want %q", got, want)
	}
}
