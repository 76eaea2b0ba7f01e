package cfg

import (
	"github.com/tokflow/tokflow/pkg/label"
)

// LoopMarker is the synthetic destination emitted for nested loop tokens
// that fall inside a recorded non-nested while range. It appears in edges
// only, never in the node list.
const LoopMarker = "f"

// Build generates the control-flow graph for a label sequence.
//
// The walk applies, in priority order, one rule per label: expression nodes
// are skipped (they receive their edge to end when their paired header is
// processed), non-nested if/elif headers fan out to their expression node
// and the next branch keyword, non-nested else connects to end, and loops
// get self-loops plus range-based exit edges. The loop-range and LoopMarker
// handling for nested for/while combinations is a heuristic verified only
// against single-loop samples; multiply-nested loops keep the documented
// fallback behavior.
//
// The result is a deterministic function of the sequence: identical input
// yields identical nodes and edges.
func Build(seq []label.Label) *Graph {
	texts := label.Strings(seq)

	g := &Graph{
		Nodes:      uniqueNodes(texts),
		BranchHits: make(map[string]int),
	}

	var edges []Edge
	if len(texts) >= 2 {
		edges = append(edges, Edge{From: texts[0], To: texts[1]})
	}

	// Range of the last non-nested while header, used by the nested loop
	// rules. -1 means no range recorded yet.
	whileStart, whileEnd := -1, -1

	for i := 1; i < len(seq)-1; i++ {
		cur := seq[i]
		curText := texts[i]
		next := seq[i+1]
		nextText := texts[i+1]

		switch {
		case cur.Exp:
			// Expression nodes are destinations only.

		case (cur.Class == label.ClassIf || cur.Class == label.ClassElif) && !cur.Nested &&
			next.Exp && !next.Nested:
			// Branch header: fan out to its condition expression and to the
			// next alternative; the expression always terminates at end.
			edges = append(edges, Edge{From: curText, To: nextText})
			g.BranchHits[curText]++
			g.BranchHits[nextText]++

			if j := nextBranchKeyword(seq, i+2); j >= 0 {
				edges = append(edges, Edge{From: curText, To: texts[j]})
				g.BranchHits[texts[j]]++
			}
			edges = append(edges, Edge{From: nextText, To: "end"})

		case cur.Class == label.ClassElse && !cur.Nested:
			edges = append(edges, Edge{From: curText, To: "end"})
			g.BranchHits[curText]++

		case cur.Class == label.ClassFor && cur.Nested:
			edges = append(edges, Edge{From: curText, To: curText})
			switch {
			case seq[i-1].Class == label.ClassFor:
				// Close the loop back to the enclosing for header.
				edges = append(edges, Edge{From: curText, To: texts[i-1]})
			case next.Nested:
				edges = append(edges, Edge{From: curText, To: nextText})
			case inRange(i, whileStart, whileEnd):
				edges = append(edges, Edge{From: curText, To: LoopMarker})
			default:
				edges = append(edges, Edge{From: curText, To: nextText})
			}

		case cur.Class == label.ClassFor:
			if !next.Nested {
				edges = append(edges, Edge{From: curText, To: curText})
			}
			if j := nextNonNested(seq, i+1); j >= 0 {
				edges = append(edges, Edge{From: curText, To: texts[j]})
				if texts[i+1] != texts[j] {
					edges = append(edges, Edge{From: curText, To: texts[i+1]})
				}
			}

		case cur.Class == label.ClassWhile && !cur.Nested:
			if !next.Nested {
				edges = append(edges, Edge{From: curText, To: curText})
			}
			whileStart = i
			if j := nextNonNested(seq, i+1); j >= 0 {
				whileEnd = j
				edges = append(edges, Edge{From: curText, To: texts[j]})
				if texts[i+1] != texts[j] {
					edges = append(edges, Edge{From: curText, To: texts[i+1]})
				}
			}

		case cur.Class == label.ClassWhile:
			if inRange(i, whileStart, whileEnd) {
				edges = append(edges, Edge{From: curText, To: LoopMarker})
			} else {
				edges = append(edges, Edge{From: curText, To: nextText})
			}
			edges = append(edges, Edge{From: curText, To: curText})

		default:
			// Nested branch headers and anything else not covered above get
			// a plain edge to the next label.
			edges = append(edges, Edge{From: curText, To: nextText})
		}
	}

	seen := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		if e.From == "" || e.To == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		g.Edges = append(g.Edges, e)
	}

	return g
}

// uniqueNodes removes duplicate labels preserving first appearance order.
func uniqueNodes(texts []string) []string {
	seen := make(map[string]struct{}, len(texts))
	nodes := make([]string, 0, len(texts))
	for _, t := range texts {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		nodes = append(nodes, t)
	}
	return nodes
}

// nextBranchKeyword returns the index of the first label at or after from
// that is a non-nested elif, a non-nested else, or the end marker. It
// returns -1 when no such label exists.
func nextBranchKeyword(seq []label.Label, from int) int {
	for j := from; j < len(seq); j++ {
		l := seq[j]
		switch {
		case l.Class == label.ClassEnd:
			return j
		case l.Exp || l.Nested:
			continue
		case l.Class == label.ClassElif || l.Class == label.ClassElse:
			return j
		}
	}
	return -1
}

// nextNonNested returns the index of the first non-nested label at or after
// from, or -1 when every remaining label is nested.
func nextNonNested(seq []label.Label, from int) int {
	for k := from; k < len(seq); k++ {
		if !seq[k].Nested {
			return k
		}
	}
	return -1
}

// inRange reports whether i falls inside the recorded [start, end] range.
func inRange(i, start, end int) bool {
	return start >= 0 && end >= 0 && start <= i && i <= end
}
