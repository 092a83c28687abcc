package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/rsend/lsp"
)

func newLSPCmd() *cobra.Command {
	var tcpAddr string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		Long: `Start the language server on stdio.

The server answers textDocument/selectionRange and textDocument/foldingRange
with statement ranges, and provides the rsend.statementAt command which takes
a document URI and a 0-based line.

Examples:
  rsend lsp
  rsend lsp --tcp localhost:7777`,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version)
			if tcpAddr != "" {
				return server.RunTCP(tcpAddr)
			}
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&tcpAddr, "tcp", "", "listen on this address instead of stdio")

	return cmd
}
