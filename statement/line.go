package statement

import "regexp"

var (
	commentPattern = regexp.MustCompile(`\s*#.*`)

	// continuationPattern matches a line whose last token is a binary or
	// pipe operator, optionally followed by a comment.
	continuationPattern = regexp.MustCompile(`(,|\+|!|\$|\^|&|\*|-|=|:|'|~|\||/|\?|%.*%)(\s*|\s*#.*)$`)

	blankPattern = regexp.MustCompile(`^\s*$`)
)

// CleanLine removes a trailing comment and the whitespace before it.
//
// The first '#' on the line starts the comment even when it sits inside a
// string literal.
func CleanLine(text string) string {
	loc := commentPattern.FindStringIndex(text)
	if loc == nil {
		return text
	}
	return text[:loc[0]] + text[loc[1]:]
}

// Continues reports whether a cleaned line carries its statement onto the next
// line: it ends in an operator or holds nothing but whitespace.
func Continues(text string) bool {
	return continuationPattern.MatchString(text) || blankPattern.MatchString(text)
}

// IsBlank reports whether a line holds no code once its comment is removed.
func IsBlank(text string) bool {
	return blankPattern.MatchString(CleanLine(text))
}
