package lsp

import (
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/rsend/document"
	"github.com/dhamidi/rsend/statement"
)

// CommandStatementAt resolves the statement around a line. Arguments are the
// document URI and a 0-based line number.
const CommandStatementAt = "rsend.statementAt"

var errBadArguments = errors.New("bad arguments")

// Each position gets the range of its own line, with the whole statement as
// parent when the statement spans more than that line.
func (ls *Server) textDocumentSelectionRange(ctx *glsp.Context, params *protocol.SelectionRangeParams) ([]protocol.SelectionRange, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	doc := ls.store.GetFile(path)
	if doc == nil {
		return nil, nil
	}

	ranges := make([]protocol.SelectionRange, 0, len(params.Positions))
	for _, pos := range params.Positions {
		line := int(pos.Line)
		st, err := ls.store.StatementAt(path, line)
		if err != nil {
			log.Debugf("selection range %s:%d: %s", path, line+1, err)
			ranges = append(ranges, protocol.SelectionRange{
				Range: protocol.Range{Start: pos, End: pos},
			})
			continue
		}

		own := statement.Range{StartLine: line, EndLine: line}
		sel := protocol.SelectionRange{Range: lineRange(doc, own)}
		if st.Range != own {
			sel.Parent = &protocol.SelectionRange{Range: lineRange(doc, st.Range)}
		}
		ranges = append(ranges, sel)
	}
	return ranges, nil
}

func (ls *Server) textDocumentFoldingRange(ctx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, nil
	}
	statements, err := ls.store.StatementsIn(path)
	if err != nil {
		return nil, nil
	}

	kind := string(protocol.FoldingRangeKindRegion)
	var folds []protocol.FoldingRange
	for _, st := range statements {
		if st.Len() < 2 {
			continue
		}
		folds = append(folds, protocol.FoldingRange{
			StartLine: protocol.UInteger(st.StartLine),
			EndLine:   protocol.UInteger(st.EndLine),
			Kind:      &kind,
		})
	}
	return folds, nil
}

func (ls *Server) workspaceExecuteCommand(ctx *glsp.Context, params *protocol.ExecuteCommandParams) (any, error) {
	switch params.Command {
	case CommandStatementAt:
		return ls.statementAt(params.Arguments)
	default:
		return nil, fmt.Errorf("unknown command %q", params.Command)
	}
}

func (ls *Server) statementAt(args []any) (document.Statement, error) {
	if len(args) != 2 {
		return document.Statement{}, fmt.Errorf("%s: %w: want [uri, line], got %d arguments", CommandStatementAt, errBadArguments, len(args))
	}
	uri, ok := args[0].(string)
	if !ok {
		return document.Statement{}, fmt.Errorf("%s: %w: uri is %T", CommandStatementAt, errBadArguments, args[0])
	}
	line, ok := toLine(args[1])
	if !ok {
		return document.Statement{}, fmt.Errorf("%s: %w: line is %T", CommandStatementAt, errBadArguments, args[1])
	}

	path, err := uriToPath(uri)
	if err != nil {
		return document.Statement{}, fmt.Errorf("%s: %w", CommandStatementAt, err)
	}
	return ls.store.StatementAt(path, line)
}

// toLine accepts the number types a decoded JSON argument or a direct caller
// may use.
func toLine(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case protocol.UInteger:
		return int(n), true
	default:
		return 0, false
	}
}

// lineRange spans whole lines, from the first column of StartLine to the end
// of EndLine. Columns are counted in UTF-16 code units.
func lineRange(doc *document.Document, r statement.Range) protocol.Range {
	end := []rune(doc.Line(r.EndLine))
	return protocol.Range{
		Start: protocol.Position{Line: protocol.UInteger(r.StartLine)},
		End: protocol.Position{
			Line:      protocol.UInteger(r.EndLine),
			Character: protocol.UInteger(len(utf16.Encode(end))),
		},
	}
}
