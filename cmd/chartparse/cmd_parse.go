package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/format"
	"github.com/dhamidi/chartparse/lexer"
	"github.com/dhamidi/chartparse/parse"
)

func newParseCmd() *cobra.Command {
	var gf grammarFlags
	var pf parserFlags
	var outputFormat string
	var trees bool

	cmd := &cobra.Command{
		Use:   "parse [words...]",
		Short: "Parse a sentence and print the chart",
		Long: `Parse a sentence and print every chart row followed by the outcome.
Without arguments the sentence is read from the first line of standard input.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.load()
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				sc := bufio.NewScanner(os.Stdin)
				if sc.Scan() {
					text = sc.Text()
				}
				if err := sc.Err(); err != nil {
					return fmt.Errorf("read sentence: %w", err)
				}
			}

			words := lexer.Fields(text)
			lx, err := pf.lexer()
			if err != nil {
				return err
			}
			if lx != nil {
				if words, err = lx.Words(text); err != nil {
					return fmt.Errorf("tokenize: %w", err)
				}
			}

			res, err := parse.New(g, pf.options()...).Parse(words)
			if err != nil {
				return err
			}

			var encoder format.Encoder
			switch outputFormat {
			case "text":
				te := format.NewTextEncoder(os.Stdout)
				if trees {
					te.WithTrees()
				}
				encoder = te
			default:
				if encoder, err = format.New(outputFormat, os.Stdout); err != nil {
					return err
				}
			}

			if err := encoder.Encode(res); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return res.Err()
		},
	}

	gf.register(cmd)
	pf.register(cmd)
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&trees, "trees", false, "print the tree of every derivation (text format)")

	return cmd
}
