package grammar

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"text/scanner"

	"golang.org/x/exp/ebnf"
)

// LoadError describes a problem found while reading a grammar file.
type LoadError struct {
	Filename string
	Line     int
	Column   int
	Msg      string
}

func (e *LoadError) Error() string {
	if e.Line == 0 {
		if e.Filename != "" {
			return fmt.Sprintf("%s: %s", e.Filename, e.Msg)
		}
		return e.Msg
	}
	if e.Filename != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.Filename, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Msg)
}

// LoadErrors collects every LoadError of a grammar file.
type LoadErrors []*LoadError

func (l LoadErrors) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", l[0], len(l)-1)
}

func newLoadError(pos scanner.Position, format string, args ...any) *LoadError {
	return &LoadError{
		Filename: pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Msg:      fmt.Sprintf(format, args...),
	}
}

// LoadFile reads an EBNF grammar from filename.
func LoadFile(filename, start string) (*Grammar, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open grammar: %w", err)
	}
	defer f.Close()

	g, err := Parse(filename, f, start)
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	return g, nil
}

// Parse reads a grammar written in EBNF. Names are nonterminals and quoted
// tokens are terminals:
//
//	S  = NP VP .
//	NP = N [ PP ] .
//	N  = "they" | "fish" .
//
// Groups and options are expanded into flat alternatives. Repetitions and
// character ranges have no context-free counterpart here and are rejected.
// An empty start selects the first production of the file.
// Errors are returned as LoadErrors.
func Parse(filename string, r io.Reader, start string) (*Grammar, error) {
	src, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, syntaxErrors(filename, err)
	}

	prods := make([]*ebnf.Production, 0, len(src))
	for _, p := range src {
		prods = append(prods, p)
	}
	sort.Slice(prods, func(i, j int) bool {
		return prods[i].Pos().Offset < prods[j].Pos().Offset
	})

	var (
		errs         LoadErrors
		productions  []Production
		nonterminals []string
		terminals    []string
		seenTerminal = make(map[string]bool)
	)

	for _, p := range prods {
		name := p.Name.String
		nonterminals = append(nonterminals, name)

		alts, err := expand(p.Expr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, alt := range alts {
			rhs := make([]string, 0, len(alt))
			for _, sym := range alt {
				if sym.terminal {
					if !seenTerminal[sym.name] {
						seenTerminal[sym.name] = true
						terminals = append(terminals, sym.name)
					}
				} else if _, ok := src[sym.name]; !ok {
					errs = append(errs, newLoadError(sym.pos, "undefined: %s", sym.name))
				}
				rhs = append(rhs, sym.name)
			}
			productions = append(productions, Production{LHS: name, RHS: rhs})
		}
	}

	if start == "" && len(prods) > 0 {
		start = prods[0].Name.String
	}
	if _, ok := src[start]; !ok {
		errs = append(errs, &LoadError{Filename: filename, Msg: fmt.Sprintf("no production for start symbol %q", start)})
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return New(nonterminals, terminals, start, productions), nil
}

type symbol struct {
	name     string
	terminal bool
	pos      scanner.Position
}

func expand(expr ebnf.Expression) ([][]symbol, *LoadError) {
	switch e := expr.(type) {
	case nil:
		return [][]symbol{{}}, nil

	case ebnf.Alternative:
		var out [][]symbol
		for _, alt := range e {
			alts, err := expand(alt)
			if err != nil {
				return nil, err
			}
			out = append(out, alts...)
		}
		return out, nil

	case ebnf.Sequence:
		out := [][]symbol{{}}
		for _, item := range e {
			alts, err := expand(item)
			if err != nil {
				return nil, err
			}
			next := make([][]symbol, 0, len(out)*len(alts))
			for _, prefix := range out {
				for _, suffix := range alts {
					seq := make([]symbol, 0, len(prefix)+len(suffix))
					seq = append(seq, prefix...)
					seq = append(seq, suffix...)
					next = append(next, seq)
				}
			}
			out = next
		}
		return out, nil

	case *ebnf.Name:
		return [][]symbol{{{name: e.String, pos: e.Pos()}}}, nil

	case *ebnf.Token:
		return [][]symbol{{{name: e.String, terminal: true, pos: e.Pos()}}}, nil

	case *ebnf.Group:
		return expand(e.Body)

	case *ebnf.Option:
		alts, err := expand(e.Body)
		if err != nil {
			return nil, err
		}
		return append(alts, []symbol{}), nil

	case *ebnf.Repetition:
		return nil, newLoadError(e.Pos(), "repetition is not supported, use a recursive production")

	case *ebnf.Range:
		return nil, newLoadError(e.Pos(), "character range is not supported")

	case *ebnf.Bad:
		return nil, newLoadError(e.Pos(), "%s", e.Error)
	}
	return nil, newLoadError(expr.Pos(), "unsupported expression %T", expr)
}

// syntaxErrors converts the error list produced by the EBNF parser.
// ebnf.Parse returns an unexported slice of errors whose Error method only
// reports the first entry, so the entries are reached by reflection. Each
// entry carries its position as a "file:line:col: " prefix. Any other
// error shape is reported as a single error.
func syntaxErrors(filename string, err error) LoadErrors {
	var errs LoadErrors
	v := reflect.ValueOf(err)
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			if e, ok := v.Index(i).Interface().(error); ok {
				errs = append(errs, splitPosition(filename, e.Error()))
			}
		}
	}
	if len(errs) == 0 {
		errs = append(errs, splitPosition(filename, err.Error()))
	}
	return errs
}

func splitPosition(filename, msg string) *LoadError {
	le := &LoadError{Filename: filename, Msg: msg}
	head, rest, ok := strings.Cut(msg, ": ")
	if !ok {
		return le
	}
	parts := strings.Split(head, ":")
	if len(parts) < 2 {
		return le
	}
	line, err1 := strconv.Atoi(parts[len(parts)-2])
	col, err2 := strconv.Atoi(parts[len(parts)-1])
	if err1 != nil || err2 != nil {
		return le
	}
	le.Line = line
	le.Column = col
	le.Msg = rest
	return le
}
