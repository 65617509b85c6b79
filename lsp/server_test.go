package lsp

import (
	"strings"
	"testing"
)

const toySource = `S  = NP VP .
NP = N | N PP .
PP = P NP .
VP = V | V NP .
N  = "they" | "fish" .
P  = "in" .
V  = "fish" .
`

func TestDiagnosticsCleanGrammar(t *testing.T) {
	diags := Diagnostics("toy.ebnf", toySource)
	if diags == nil || len(diags) != 0 {
		t.Errorf("got %v, want an empty non-nil slice", diags)
	}
}

func TestDiagnosticsUndefinedName(t *testing.T) {
	src := strings.Replace(toySource, "VP = V | V NP .", "VP = V | V Object .", 1)

	diags := Diagnostics("toy.ebnf", src)
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %v", len(diags), diags)
	}
	d := diags[0]
	if d.Range.Start.Line != 3 || d.Range.Start.Character != 11 {
		t.Errorf("range starts at %d:%d, want 3:11", d.Range.Start.Line, d.Range.Start.Character)
	}
	if !strings.Contains(d.Message, "Object") {
		t.Errorf("message = %q", d.Message)
	}
	if d.Severity == nil || *d.Severity != 1 {
		t.Error("diagnostic should be an error")
	}
}

func TestDiagnosticsSyntaxError(t *testing.T) {
	diags := Diagnostics("toy.ebnf", "S = NP VP\nNP = \"a\" .")
	if len(diags) == 0 {
		t.Fatal("expected a diagnostic")
	}
	if diags[0].Range.Start.Line != 1 {
		t.Errorf("diagnostic on line %d, want 1", diags[0].Range.Start.Line)
	}
}

func TestDefinitions(t *testing.T) {
	defs := Definitions(toySource)
	if got, want := defs["NP"], "NP -> N\nNP -> N PP"; got != want {
		t.Errorf("NP = %q, want %q", got, want)
	}
	if len(defs) != 7 {
		t.Errorf("got %d definitions, want 7", len(defs))
	}

	broken := Definitions("S = NP VP .\nNP = N | ")
	if _, ok := broken["NP"]; !ok {
		t.Errorf("definitions of a broken file = %v, want NP included", broken)
	}
}

func TestWordAt(t *testing.T) {
	tests := []struct {
		line, col int
		want      string
	}{
		{0, 0, "S"},
		{0, 6, "NP"},
		{0, 8, "VP"},
		{1, 13, "PP"},
		{9, 0, ""},
	}
	for _, tt := range tests {
		if got := wordAt(toySource, tt.line, tt.col); got != tt.want {
			t.Errorf("wordAt(%d, %d) = %q, want %q", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestURIToPath(t *testing.T) {
	if got := uriToPath("file:///tmp/g%20x.ebnf"); got != "/tmp/g x.ebnf" {
		t.Errorf("uriToPath = %q", got)
	}
	if got := uriToPath("untitled:1"); got != "untitled:1" {
		t.Errorf("uriToPath = %q", got)
	}
}
