package solver

import (
	"time"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
)

// dfsFrame is one element of the DFS stack: a state, the path of
// moves taken from the root to reach it, and its depth.
type dfsFrame struct {
	state puzzle.State
	path  []puzzle.Move
	depth int
}

// Solve runs a LIFO stack-based depth-first search with a globally
// shared visited set (never cleared during the search) and an
// optional depth bound. Per §4.6, this means Solve is a tree search
// over a global DAG, not a strict recursive DFS: it can miss a
// shorter path to a state already visited via a different ancestor.
// BFS and A* exist for shortest-path guarantees.
func Solve(b *puzzle.Board, opts Options) Result {
	start := time.Now()
	h := progress.New(opts.Progress)

	root := dfsFrame{state: b.InitialState()}
	if opts.Cancel.Cancelled() {
		return abortedResult(b, start, 0, 1)
	}

	visited := map[string]bool{b.CanonicalKey(root.state): true}
	stack := []dfsFrame{root}

	for len(stack) > 0 {
		if opts.Cancel.Cancelled() {
			return abortedResult(b, start, h.Explored(), len(stack))
		}
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h.Expand(len(stack), frame.depth)

		if b.IsGoal(frame.state) {
			return buildResult(b, Solved, frame.path, h, len(stack))
		}
		if opts.MaxDepth > 0 && frame.depth >= opts.MaxDepth {
			continue
		}

		for _, m := range b.Successors(frame.state) {
			next := b.Apply(frame.state, m)
			key := b.CanonicalKey(next)
			if visited[key] {
				continue
			}
			visited[key] = true
			path := append(append([]puzzle.Move(nil), frame.path...), m)
			stack = append(stack, dfsFrame{state: next, path: path, depth: frame.depth + 1})
		}
	}

	return buildResult(b, Unsolved, nil, h, 0)
}

// Backtrack is the Backtracking Solver (C7): identical in effect to
// Solve with no depth bound. It exists as a separately named entry
// point for API symmetry with BFS/Solve/AStar.
func Backtrack(b *puzzle.Board, opts Options) Result {
	opts.MaxDepth = 0
	return Solve(b, opts)
}
