// Package paths enumerates complete start-to-end paths over a control-flow
// adjacency mapping. Traversal follows edge insertion order and handles
// loop back-edges with a synthetic "loop executes then exits" completion
// rule instead of unbounded cycling.
package paths

import "fmt"

// Path is one ordered traversal from source to destination.
type Path []string

// Default traversal limits, applied when Options leaves a field zero.
const (
	DefaultMaxDepth = 10000
	DefaultMaxPaths = 100000
)

// Options bounds the traversal. Path enumeration is the only part of the
// pipeline with unbounded resource use: path count can be exponential in
// the number of branches, so both dimensions are capped.
type Options struct {
	// MaxDepth is the maximum path length before enumeration aborts.
	MaxDepth int

	// MaxPaths is the maximum number of complete paths collected before
	// enumeration aborts.
	MaxPaths int
}

// LimitKind identifies which traversal limit was exceeded.
type LimitKind string

const (
	LimitDepth LimitKind = "depth"
	LimitPaths LimitKind = "paths"
)

// LimitError reports that enumeration stopped because the path space was
// too large for the configured limits.
type LimitError struct {
	Kind  LimitKind
	Limit int
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("path enumeration exceeded %s limit (%d)", e.Kind, e.Limit)
}

// frame is one unit of pending traversal work. A visit frame extends the
// search from the last element of its path; an emit frame carries an
// already-completed synthetic path awaiting collection in order.
type frame struct {
	path Path
	emit bool
}

// Enumerate returns every complete path from source to dest over adj, in
// the order induced by adjacency insertion order.
//
// When a successor already occurs in the current path (a back-edge), its
// own successors are scanned in order: a self-loop entry stops the scan
// contributing nothing, while an entry equal to dest completes one
// synthetic path representing the loop executing then exiting. Nodes with
// no adjacency entry simply contribute no paths.
//
// The traversal uses an explicit work stack; exceeding Options limits
// returns a *LimitError rather than exhausting the call stack.
func Enumerate(adj map[string][]string, source, dest string, opts Options) ([]Path, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	maxPaths := opts.MaxPaths
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}

	var result []Path
	stack := []frame{{path: Path{source}}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.emit {
			if len(result) >= maxPaths {
				return nil, &LimitError{Kind: LimitPaths, Limit: maxPaths}
			}
			result = append(result, f.path)
			continue
		}

		node := f.path[len(f.path)-1]
		if node == dest {
			if len(result) >= maxPaths {
				return nil, &LimitError{Kind: LimitPaths, Limit: maxPaths}
			}
			result = append(result, f.path)
			continue
		}

		if len(f.path) >= maxDepth {
			return nil, &LimitError{Kind: LimitDepth, Limit: maxDepth}
		}

		succs := adj[node]
		// Successors are pushed in reverse so they pop in insertion order.
		for k := len(succs) - 1; k >= 0; k-- {
			next := succs[k]

			if contains(f.path, next) {
				if p, ok := backEdgePath(adj, f.path, next, dest); ok {
					stack = append(stack, frame{path: p, emit: true})
				}
				continue
			}

			stack = append(stack, frame{path: extend(f.path, next)})
		}
	}

	return result, nil
}

// backEdgePath applies the cycle-termination rule for a back-edge into
// node: scan node's successors in order, stopping at a self-loop with no
// path, or completing the synthetic path prefix + [node, dest] when dest is
// reached first.
func backEdgePath(adj map[string][]string, prefix Path, node, dest string) (Path, bool) {
	for _, succ := range adj[node] {
		if succ == node {
			return nil, false
		}
		if succ == dest {
			return extend(extend(prefix, node), dest), true
		}
	}
	return nil, false
}

// extend returns a copy of path with node appended.
func extend(path Path, node string) Path {
	out := make(Path, len(path), len(path)+1)
	copy(out, path)
	return append(out, node)
}

func contains(path Path, node string) bool {
	for _, n := range path {
		if n == node {
			return true
		}
	}
	return false
}
