// Package label turns raw source text into the ordered control-flow label
// sequence consumed by the edge generator. Each recognized keyword line
// produces one label (two for if/elif, which carry a paired condition
// expression label), numbered by a single counter shared across all keyword
// kinds for the whole source.
package label

import (
	"strconv"
	"strings"

	"github.com/tokflow/tokflow/pkg/token"
)

// Class tags the category of a label.
type Class int

const (
	ClassStart Class = iota // synthetic entry marker
	ClassEnd                // synthetic exit marker
	ClassIf
	ClassElif
	ClassElse
	ClassFor
	ClassWhile
)

// Label is one node in the control-flow label sequence.
type Label struct {
	Class  Class
	N      int  // shared counter value; 0 for start/end
	Nested bool // occurrence sits inside an open block
	Exp    bool // paired condition expression node (if/elif only)
}

// Start and End are the synthetic sequence boundary labels.
var (
	Start = Label{Class: ClassStart}
	End   = Label{Class: ClassEnd}
)

func (c Class) keyword() string {
	switch c {
	case ClassIf:
		return "if"
	case ClassElif:
		return "elif"
	case ClassElse:
		return "else"
	case ClassFor:
		return "for"
	case ClassWhile:
		return "while"
	default:
		return ""
	}
}

// String renders the label in the legacy token form: if3, ifsp3, ifspexp3,
// elsesp7, while2, start, end.
func (l Label) String() string {
	switch l.Class {
	case ClassStart:
		return "start"
	case ClassEnd:
		return "end"
	}

	var sb strings.Builder
	sb.WriteString(l.Class.keyword())
	if l.Nested {
		sb.WriteString("sp")
	}
	if l.Exp {
		sb.WriteString("exp")
	}
	sb.WriteString(strconv.Itoa(l.N))
	return sb.String()
}

// Strings renders a label sequence to its textual form.
func Strings(seq []Label) []string {
	out := make([]string, len(seq))
	for i, l := range seq {
		out[i] = l.String()
	}
	return out
}

// classFor maps a line classification to a label class.
func classFor(k token.Kind) Class {
	switch k {
	case token.KindIf:
		return ClassIf
	case token.KindElif:
		return ClassElif
	case token.KindElse:
		return ClassElse
	case token.KindFor:
		return ClassFor
	case token.KindWhile:
		return ClassWhile
	}
	return ClassStart
}

// stackEntry records an open block: the indentation depth of its header line
// and the label assigned to it.
type stackEntry struct {
	depth int
	lab   Label
}

// Build derives the ordered label sequence for source.
//
// Blank lines are skipped entirely; they advance neither the counter nor the
// nesting stack. Every other line first pops all open blocks whose header
// depth is >= the line's depth (a block ends when indentation returns to or
// below its header's level), then, if the line begins with a recognized
// keyword, increments the shared counter and emits labels. A line is nested
// iff the stack is non-empty after popping. The result is bounded by the
// synthetic start and end labels.
func Build(source string) []Label {
	var (
		seq   []Label
		stack []stackEntry
		count int
	)

	for _, line := range strings.Split(source, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		kind, _ := token.Classify(line)
		depth := token.IndentLevel(line)

		for len(stack) > 0 && depth <= stack[len(stack)-1].depth {
			stack = stack[:len(stack)-1]
		}
		nested := len(stack) > 0

		if kind == token.KindOther {
			continue
		}

		count++
		lab := Label{Class: classFor(kind), N: count, Nested: nested}
		seq = append(seq, lab)

		if kind == token.KindIf || kind == token.KindElif {
			exp := lab
			exp.Exp = true
			seq = append(seq, exp)
		}

		stack = append(stack, stackEntry{depth: depth, lab: lab})
	}

	out := make([]Label, 0, len(seq)+2)
	out = append(out, Start)
	out = append(out, seq...)
	out = append(out, End)
	return out
}
