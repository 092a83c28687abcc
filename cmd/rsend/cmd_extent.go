package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dhamidi/rsend/document"
)

var (
	headerColor   = color.New(color.Bold, color.FgCyan)
	fallbackColor = color.New(color.FgYellow)
)

func newExtentCmd(opts *globalOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "extent <file> <line>",
		Short: "Print the statement around a line",
		Long: `Print the statement containing a 1-based line of a file.

Text output shows the line range followed by the statement's code. JSON output
uses 0-based lines, matching the rsend.statementAt language server command.

Examples:
  rsend extent analysis.R 12
  rsend extent analysis.R 12 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			line, err := strconv.Atoi(args[1])
			if err != nil || line < 1 {
				return fmt.Errorf("line must be a positive number, got %q", args[1])
			}
			return runExtent(cmd.OutOrStdout(), opts, args[0], line, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text or json")

	return cmd
}

func runExtent(w io.Writer, opts *globalOptions, path string, line int, format string) error {
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q", format)
	}

	store, err := opts.openDocument(path)
	if err != nil {
		return err
	}
	st, err := store.StatementAt(path, line-1)
	if err != nil {
		return err
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	printStatement(w, path, st)
	fmt.Fprintln(w, st.Text)
	return nil
}

// printStatement writes the header line of a statement, with 1-based lines.
func printStatement(w io.Writer, path string, st document.Statement) {
	headerColor.Fprintf(w, "%s:%d-%d", path, st.StartLine+1, st.EndLine+1)
	if st.Fallback {
		fallbackColor.Fprint(w, " (unbalanced, line only)")
	}
	fmt.Fprintln(w)
}
