package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/grammar"
	"github.com/dhamidi/chartparse/lexer"
	"github.com/dhamidi/chartparse/parse"
)

// grammarFlags selects the grammar a command works with.
type grammarFlags struct {
	file  string
	start string
}

func (f *grammarFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "grammar", "g", "", "EBNF grammar file (default: built-in toy grammar)")
	cmd.Flags().StringVar(&f.start, "start", "", "start symbol (default: first production)")
}

func (f *grammarFlags) load() (*grammar.Grammar, error) {
	if f.file == "" {
		g := grammar.Toy()
		if f.start != "" {
			g.Start = f.start
		}
		return g, nil
	}
	return grammar.LoadFile(f.file, f.start)
}

// parserFlags configures the parser built by a command.
type parserFlags struct {
	privileged []string
	maxRows    int
	allStarts  bool
	spanOnly   bool
	lexerFile  string
}

func (f *parserFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.privileged, "privileged", "p", nil, "categories the scanner may consume words for (default: lexical categories of the grammar)")
	cmd.Flags().IntVar(&f.maxRows, "max-rows", parse.DefaultMaxRows, "abort when the chart grows beyond this many rows (0 disables)")
	cmd.Flags().BoolVar(&f.allStarts, "all-starts", false, "seed every production of the start symbol, not only the first")
	cmd.Flags().BoolVar(&f.spanOnly, "span-only", false, "accept any final row covering the sentence as a derivation")
	cmd.Flags().StringVar(&f.lexerFile, "lexer", "", "EBNF lexical grammar used to tokenize sentences (default: split on white space)")
}

func (f *parserFlags) options() []parse.Option {
	opts := []parse.Option{parse.WithMaxRows(f.maxRows)}
	if len(f.privileged) > 0 {
		opts = append(opts, parse.WithPrivileged(f.privileged...))
	}
	if f.allStarts {
		opts = append(opts, parse.WithAllStartProductions())
	}
	if f.spanOnly {
		opts = append(opts, parse.WithSpanOnlyDerivations())
	}
	return opts
}

func (f *parserFlags) lexer() (*lexer.Lexer, error) {
	if f.lexerFile == "" {
		return nil, nil
	}
	l, err := lexer.LoadFile(f.lexerFile)
	if err != nil {
		return nil, fmt.Errorf("load lexer: %w", err)
	}
	return l, nil
}
