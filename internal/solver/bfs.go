package solver

import (
	"time"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
)

// bfsNode is one element of the BFS frontier queue: a state, a
// pointer to the node it was reached from, the move that reached it,
// and its depth from the root.
type bfsNode struct {
	state  puzzle.State
	parent *bfsNode
	move   puzzle.Move
	depth  int
}

// BFS runs a standard FIFO breadth-first search over b's state graph
// and returns the shortest move sequence (by move count, not cell
// distance - see §4.2) that brings the goal vehicle to the exit.
func BFS(b *puzzle.Board, opts Options) Result {
	start := time.Now()
	h := progress.New(opts.Progress)

	root := &bfsNode{state: b.InitialState()}
	if opts.Cancel.Cancelled() {
		return abortedResult(b, start, 0, 1)
	}

	visited := map[string]bool{b.CanonicalKey(root.state): true}
	queue := []*bfsNode{root}

	for len(queue) > 0 {
		if opts.Cancel.Cancelled() {
			return abortedResult(b, start, h.Explored(), len(queue))
		}
		node := queue[0]
		queue = queue[1:]
		h.Expand(len(queue), node.depth)

		if b.IsGoal(node.state) {
			return buildResult(b, Solved, pathTo(node), h, len(queue))
		}

		for _, m := range b.Successors(node.state) {
			next := b.Apply(node.state, m)
			key := b.CanonicalKey(next)
			if visited[key] {
				continue
			}
			visited[key] = true
			queue = append(queue, &bfsNode{state: next, parent: node, move: m, depth: node.depth + 1})
		}
	}

	return buildResult(b, Unsolved, nil, h, 0)
}

// pathTo walks parent pointers from node back to the root and
// reverses them into the ordered move list that reaches node.
func pathTo(node *bfsNode) []puzzle.Move {
	var moves []puzzle.Move
	for n := node; n.parent != nil; n = n.parent {
		moves = append(moves, n.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}
