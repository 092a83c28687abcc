package document

import (
	"strings"

	"github.com/dhamidi/rsend/statement"
)

// Document is the text of one source file, split into lines.
type Document struct {
	Path    string
	Content []byte
	lines   []string
}

func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		lines:   splitLines(content),
	}
}

func splitLines(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func (d *Document) Line(i int) string {
	return d.lines[i]
}

func (d *Document) LineCount() int {
	return len(d.lines)
}

// Lines returns the raw lines covered by r.
func (d *Document) Lines(r statement.Range) []string {
	return d.lines[r.StartLine : r.EndLine+1]
}

// Statement is a resolved statement together with the text to send.
type Statement struct {
	statement.Range

	Text string `json:"text"`

	// NextLine is where the cursor goes after the statement has been sent.
	NextLine int `json:"nextLine"`

	// Fallback is set when the brackets around the line did not balance and
	// the statement is just the requested line.
	Fallback bool `json:"fallback"`
}

func (d *Document) statement(r statement.Range, fallback, dropComments bool) Statement {
	lines := d.Lines(r)
	if dropComments {
		lines = DropCommentLines(lines)
	}
	next := r.EndLine + 1
	if next > d.LineCount()-1 {
		next = d.LineCount() - 1
	}
	return Statement{
		Range:    r,
		Text:     strings.Join(lines, "\n"),
		NextLine: next,
		Fallback: fallback,
	}
}

// DropCommentLines removes lines whose first non-blank character is '#'.
// Trailing comments on code lines are left alone.
func DropCommentLines(lines []string) []string {
	var kept []string
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		kept = append(kept, line)
	}
	return kept
}
