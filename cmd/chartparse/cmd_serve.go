package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/chartparse/api"
)

func newServeCmd() *cobra.Command {
	var gf grammarFlags
	var pf parserFlags
	var addr string
	var origins []string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON parse service",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := gf.load()
			if err != nil {
				return err
			}
			lx, err := pf.lexer()
			if err != nil {
				return err
			}

			server := api.NewServer(g, api.Config{
				AllowedOrigins: origins,
				Options:        pf.options(),
				Lexer:          lx,
			})

			displayAddr := addr
			if strings.HasPrefix(addr, ":") {
				displayAddr = "localhost" + addr
			}
			fmt.Printf("Starting server at http://%s\n", displayAddr)
			return http.ListenAndServe(addr, server)
		},
	}

	gf.register(cmd)
	pf.register(cmd)
	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "address to listen on")
	cmd.Flags().StringSliceVar(&origins, "allowed-origin", nil, "origins allowed by CORS (default: any)")

	return cmd
}
