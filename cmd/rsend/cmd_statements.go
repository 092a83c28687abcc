package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/rsend/document"
)

func newStatementsCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "statements <file>",
		Short: "List the statements of a file",
		Long: `Split a file into statements and list them in order.

Each statement is shown as its 1-based line range and its first line of code.
Blank and comment-only lines between statements are skipped.

Examples:
  rsend statements analysis.R
  rsend statements analysis.R --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatements(cmd.OutOrStdout(), opts, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")

	return cmd
}

func runStatements(w io.Writer, opts *globalOptions, path string, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	store, err := opts.openDocument(path)
	if err != nil {
		return err
	}
	statements, err := store.StatementsIn(path)
	if err != nil {
		return err
	}

	if format == "json" {
		if statements == nil {
			statements = []document.Statement{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statements)
	}

	for _, st := range statements {
		printStatement(w, path, st)
		first, _, _ := strings.Cut(st.Text, "\n")
		fmt.Fprintf(w, "  %s\n", strings.TrimSpace(first))
	}
	return nil
}
