// Package token classifies raw source lines for the control-flow pipeline.
// Classification is deliberately heuristic: a line either begins with one of
// the five recognized control keywords or it does not. There is no lexer and
// no grammar; indentation and keyword prefixes are the whole vocabulary.
package token

import "strings"

// Kind identifies the control keyword a source line begins with.
type Kind int

const (
	KindOther Kind = iota // no recognized keyword
	KindIf
	KindElif
	KindElse
	KindFor
	KindWhile
)

func (k Kind) String() string {
	switch k {
	case KindIf:
		return "if"
	case KindElif:
		return "elif"
	case KindElse:
		return "else"
	case KindFor:
		return "for"
	case KindWhile:
		return "while"
	default:
		return "other"
	}
}

// tabWidth is the number of spaces a tab counts for when measuring
// indentation.
const tabWidth = 4

// keywords lists the recognized keywords in fixed match priority order.
// Matching is a case-sensitive prefix test after stripping leading
// whitespace, same as the classification performed by the legacy tool.
var keywords = []struct {
	kind Kind
	text string
}{
	{KindIf, "if"},
	{KindElif, "elif"},
	{KindElse, "else"},
	{KindFor, "for"},
	{KindWhile, "while"},
}

// IndentLevel returns the indentation depth of line as a count of leading
// space-equivalent characters. Tabs count as 4 spaces. A line with no
// leading whitespace returns 0.
func IndentLevel(line string) int {
	line = strings.ReplaceAll(line, "\t", strings.Repeat(" ", tabWidth))
	return len(line) - len(strings.TrimLeft(line, " "))
}

// Classify reports the keyword a line begins with and the remainder of the
// line after the keyword. Lines beginning with anything else (assignments,
// print calls, comments) classify as KindOther with the trimmed line as
// remainder.
func Classify(line string) (Kind, string) {
	s := strings.TrimSpace(line)
	for _, kw := range keywords {
		if strings.HasPrefix(s, kw.text) {
			return kw.kind, strings.TrimSpace(s[len(kw.text):])
		}
	}
	return KindOther, s
}
