// Package lexer splits sentences into the words fed to the chart parser.
package lexer

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/ebnf"
)

// Position is a location in the input text.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Token is a piece of input matched by a lexical production.
type Token struct {
	Kind     string
	Literal  string
	Position Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Position, t.Kind, t.Literal)
}

// Fields splits text on white space.
func Fields(text string) []string {
	return strings.Fields(text)
}

type memoKey struct {
	name   string
	offset int
}

// Lexer tokenizes text with the lexical productions of an EBNF grammar,
// those whose name starts with an upper-case letter. At each offset the
// longest match wins; ties go to the alphabetically first production.
// A Lexer is safe for concurrent use once SetSkipKinds is no longer called.
type Lexer struct {
	grammar ebnf.Grammar
	kinds   []string
	skip    map[string]bool
}

// cursor is the state of one Tokenize call.
type cursor struct {
	*Lexer
	input    string
	pos      int
	line     int
	column   int
	memo     map[memoKey]int
	visiting map[memoKey]bool
}

// New creates a lexer for g. Tokens of kind WhiteSpace are skipped by Words.
func New(g ebnf.Grammar) *Lexer {
	var kinds []string
	for name, prod := range g {
		if prod.Expr == nil || name == "" || name[0] < 'A' || name[0] > 'Z' {
			continue
		}
		kinds = append(kinds, name)
	}
	sort.Strings(kinds)
	return &Lexer{
		grammar: g,
		kinds:   kinds,
		skip:    map[string]bool{"WhiteSpace": true},
	}
}

// LoadFile reads a lexical grammar from filename.
func LoadFile(filename string) (*Lexer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open lexical grammar: %w", err)
	}
	defer f.Close()

	g, err := ebnf.Parse(filename, f)
	if err != nil {
		return nil, fmt.Errorf("parse lexical grammar: %w", err)
	}
	return New(g), nil
}

// SetSkipKinds sets which token kinds Words drops.
func (l *Lexer) SetSkipKinds(kinds ...string) {
	l.skip = make(map[string]bool, len(kinds))
	for _, k := range kinds {
		l.skip[k] = true
	}
}

// Tokenize returns every token of text. Text no production matches is an error.
func (l *Lexer) Tokenize(text string) ([]Token, error) {
	c := &cursor{Lexer: l, input: text, line: 1, column: 1}

	var tokens []Token
	for c.pos < len(c.input) {
		start := c.position()
		kind, n := c.longest()
		if n == 0 {
			return tokens, fmt.Errorf("%s: unexpected %q", start, c.input[c.pos:c.pos+1])
		}
		tokens = append(tokens, Token{
			Kind:     kind,
			Literal:  c.input[c.pos : c.pos+n],
			Position: start,
		})
		for i := 0; i < n; i++ {
			c.advance()
		}
	}
	return tokens, nil
}

// Words tokenizes text and returns the literals of the tokens not skipped.
func (l *Lexer) Words(text string) ([]string, error) {
	tokens, err := l.Tokenize(text)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, tok := range tokens {
		if !l.skip[tok.Kind] {
			words = append(words, tok.Literal)
		}
	}
	return words, nil
}

func (c *cursor) position() Position {
	return Position{Offset: c.pos, Line: c.line, Column: c.column}
}

func (c *cursor) advance() {
	if c.input[c.pos] == '\n' {
		c.line++
		c.column = 1
	} else {
		c.column++
	}
	c.pos++
}

func (c *cursor) longest() (string, int) {
	c.memo = make(map[memoKey]int)
	var best string
	var bestLen int
	for _, name := range c.kinds {
		c.visiting = make(map[memoKey]bool)
		if n, ok := c.match(c.grammar[name].Expr, c.pos); ok && n > bestLen {
			best, bestLen = name, n
		}
	}
	return best, bestLen
}

// match returns the length matched by expr at offset. Repetitions and
// options match the empty string, so a zero length with ok set is a match.
func (c *cursor) match(expr ebnf.Expression, offset int) (int, bool) {
	switch e := expr.(type) {
	case nil:
		return 0, true

	case *ebnf.Token:
		if strings.HasPrefix(c.input[offset:], e.String) {
			return len(e.String), true
		}
		return 0, false

	case *ebnf.Range:
		return c.matchRange(e.Begin.String, e.End.String, offset)

	case ebnf.Sequence:
		total := 0
		for _, item := range e {
			n, ok := c.match(item, offset+total)
			if !ok {
				return 0, false
			}
			total += n
		}
		return total, true

	case ebnf.Alternative:
		best := -1
		for _, alt := range e {
			if n, ok := c.match(alt, offset); ok && n > best {
				best = n
			}
		}
		if best < 0 {
			return 0, false
		}
		return best, true

	case *ebnf.Repetition:
		total := 0
		for {
			n, ok := c.match(e.Body, offset+total)
			if !ok || n == 0 {
				return total, true
			}
			total += n
		}

	case *ebnf.Option:
		if n, ok := c.match(e.Body, offset); ok {
			return n, true
		}
		return 0, true

	case *ebnf.Group:
		return c.match(e.Body, offset)

	case *ebnf.Name:
		return c.matchName(e.String, offset)
	}
	return 0, false
}

// noMatch marks a memoized failure.
const noMatch = -1

func (c *cursor) matchName(name string, offset int) (int, bool) {
	key := memoKey{name: name, offset: offset}
	if n, ok := c.memo[key]; ok {
		return n, n != noMatch
	}
	// left recursion
	if c.visiting[key] {
		return 0, false
	}
	prod, ok := c.grammar[name]
	if !ok {
		c.memo[key] = noMatch
		return 0, false
	}

	c.visiting[key] = true
	n, ok := c.match(prod.Expr, offset)
	delete(c.visiting, key)

	if !ok {
		n = noMatch
	}
	c.memo[key] = n
	return n, ok
}

// matchRange matches one byte between begin and end inclusive.
func (c *cursor) matchRange(begin, end string, offset int) (int, bool) {
	if offset >= len(c.input) || len(begin) != 1 || len(end) != 1 {
		return 0, false
	}
	if ch := c.input[offset]; ch >= begin[0] && ch <= end[0] {
		return 1, true
	}
	return 0, false
}
