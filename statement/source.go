package statement

// Source gives the resolver read access to a document. It must not change
// while a resolution is running.
type Source interface {
	Line(i int) string
	LineCount() int
}

// Lines adapts a slice of lines to Source.
type Lines []string

func (l Lines) Line(i int) string { return l[i] }
func (l Lines) LineCount() int    { return len(l) }

type funcSource struct {
	getLine   func(int) string
	lineCount int
}

func (f funcSource) Line(i int) string { return f.getLine(i) }
func (f funcSource) LineCount() int    { return f.lineCount }

// SourceFunc adapts a line accessor and a line count to Source.
func SourceFunc(getLine func(int) string, lineCount int) Source {
	return funcSource{getLine: getLine, lineCount: lineCount}
}
