package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/grammar"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Grammar file tools",
	}

	cmd.AddCommand(newGrammarCheckCmd())
	cmd.AddCommand(newGrammarShowCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	var startProduction string

	cmd := &cobra.Command{
		Use:           "check <file>",
		Short:         "Load a grammar file and report every problem",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := grammar.LoadFile(args[0], startProduction)
			if err != nil {
				printErrors(err)
				return err
			}
			fmt.Printf("%s: %d productions, start %s\n", args[0], len(g.Productions), g.Start)
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", "", "start symbol (default: first production)")

	return cmd
}

func newGrammarShowCmd() *cobra.Command {
	var gf grammarFlags

	cmd := &cobra.Command{
		Use:           "show [file]",
		Short:         "Print the productions of a grammar",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				gf.file = args[0]
			}
			g, err := gf.load()
			if err != nil {
				printErrors(err)
				return err
			}
			fmt.Printf("start: %s\n", g.Start)
			fmt.Printf("lexical: %s\n", strings.Join(g.Lexical(), ", "))
			fmt.Print(g)
			return nil
		},
	}

	gf.register(cmd)

	return cmd
}

func printErrors(err error) {
	var errs grammar.LoadErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			fmt.Println(e)
		}
		return
	}
	fmt.Println(err)
}
