package solver

import (
	"container/heap"
	"time"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
)

// astarNode is one entry in the A* open set.
type astarNode struct {
	state  puzzle.State
	parent *astarNode
	move   puzzle.Move
	g      int
	h      int
	index  int // heap bookkeeping
}

func (n *astarNode) f() int { return n.g + n.h }

// openSet is a container/heap.Interface min-heap ordered on f = g+h,
// ties broken toward the smaller h (closer to the goal).
type openSet []*astarNode

func (s openSet) Len() int { return len(s) }
func (s openSet) Less(i, j int) bool {
	if s[i].f() != s[j].f() {
		return s[i].f() < s[j].f()
	}
	return s[i].h < s[j].h
}
func (s openSet) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
	s[i].index, s[j].index = i, j
}
func (s *openSet) Push(x interface{}) {
	n := x.(*astarNode)
	n.index = len(*s)
	*s = append(*s, n)
}
func (s *openSet) Pop() interface{} {
	old := *s
	n := old[len(old)-1]
	*s = old[:len(old)-1]
	return n
}

// AStar runs a best-first search keyed on f = g + h, where g is moves
// from the start and h is the domain heuristic in §4.7. h is not
// admissible in general (its blocker penalty is intentionally
// inflated), so AStar's solution may not be shortest; use BFS when
// optimality is required.
func AStar(b *puzzle.Board, opts Options) Result {
	start := time.Now()
	h := progress.New(opts.Progress)

	root := &astarNode{state: b.InitialState(), g: 0, h: heuristic(b, b.InitialState())}
	if opts.Cancel.Cancelled() {
		return abortedResult(b, start, 0, 1)
	}

	bestCost := map[string]int{b.CanonicalKey(root.state): 0}
	open := &openSet{root}
	heap.Init(open)

	for open.Len() > 0 {
		if opts.Cancel.Cancelled() {
			return abortedResult(b, start, h.Explored(), open.Len())
		}
		node := heap.Pop(open).(*astarNode)
		key := b.CanonicalKey(node.state)
		if best, ok := bestCost[key]; ok && node.g > best {
			continue // stale entry: a cheaper path to this state was already found
		}
		h.Expand(open.Len(), node.g)

		if b.IsGoal(node.state) {
			return buildResult(b, Solved, astarPathTo(node), h, open.Len())
		}

		for _, m := range b.Successors(node.state) {
			next := b.Apply(node.state, m)
			nextKey := b.CanonicalKey(next)
			tentativeG := node.g + 1
			if best, ok := bestCost[nextKey]; ok && tentativeG >= best {
				continue
			}
			bestCost[nextKey] = tentativeG
			heap.Push(open, &astarNode{
				state:  next,
				parent: node,
				move:   m,
				g:      tentativeG,
				h:      heuristic(b, next),
			})
		}
	}

	return buildResult(b, Unsolved, nil, h, 0)
}

func astarPathTo(node *astarNode) []puzzle.Move {
	var moves []puzzle.Move
	for n := node; n.parent != nil; n = n.parent {
		moves = append(moves, n.move)
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}
	return moves
}

// heuristic implements the §4.7 estimate for the distance from state
// s to the exit: exact cell count plus 2x a blocker penalty when the
// goal vehicle is aligned with the exit along its sliding axis, or
// Manhattan distance from the goal vehicle's anchor to the exit
// otherwise (misaligned, or a single-cell goal vehicle).
func heuristic(b *puzzle.Board, s puzzle.State) int {
	goal := b.Vehicles[b.GoalIndex]
	anchor := s[b.GoalIndex]
	exit := b.Exit

	switch goal.Orientation {
	case puzzle.Horizontal:
		if anchor.Row != exit.Row {
			return abs(exit.Row-anchor.Row) + abs(exit.Col-anchor.Col)
		}
		tail := anchor.Col + goal.Length - 1
		if exit.Col >= anchor.Col && exit.Col <= tail {
			return 0
		}
		occ := b.Occupancy(s)
		if exit.Col > tail {
			dist := exit.Col - tail
			blockers := 0
			for c := tail + 1; c <= exit.Col && c < b.Cols; c++ {
				if occ[anchor.Row][c] != -1 {
					blockers++
				}
			}
			return dist + 2*blockers
		}
		dist := anchor.Col - exit.Col
		blockers := 0
		for c := anchor.Col - 1; c >= exit.Col && c >= 0; c-- {
			if occ[anchor.Row][c] != -1 {
				blockers++
			}
		}
		return dist + 2*blockers
	case puzzle.Vertical:
		if anchor.Col != exit.Col {
			return abs(exit.Row-anchor.Row) + abs(exit.Col-anchor.Col)
		}
		tail := anchor.Row + goal.Length - 1
		if exit.Row >= anchor.Row && exit.Row <= tail {
			return 0
		}
		occ := b.Occupancy(s)
		if exit.Row > tail {
			dist := exit.Row - tail
			blockers := 0
			for r := tail + 1; r <= exit.Row && r < b.Rows; r++ {
				if occ[r][anchor.Col] != -1 {
					blockers++
				}
			}
			return dist + 2*blockers
		}
		dist := anchor.Row - exit.Row
		blockers := 0
		for r := anchor.Row - 1; r >= exit.Row && r >= 0; r-- {
			if occ[r][anchor.Col] != -1 {
				blockers++
			}
		}
		return dist + 2*blockers
	default: // Single
		return abs(exit.Row-anchor.Row) + abs(exit.Col-anchor.Col)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
