// Package solver implements the four interchangeable search
// strategies over internal/puzzle's state graph: BFS, DFS,
// Backtracking, and A*. Every strategy shares the same Options input
// and Result output shape so callers can swap algorithms without
// touching anything but the function they call.
package solver

import (
	"fmt"
	"time"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
)

// Status is the terminal disposition of a solver invocation.
type Status string

const (
	Solved   Status = "solved"
	Unsolved Status = "unsolved"
	Aborted  Status = "aborted"
)

// Options configures a single solver invocation. All fields are
// optional; the zero Options requests an uncancellable, unreported,
// unbounded search.
type Options struct {
	Cancel   *progress.Token
	Progress progress.Callback
	// MaxDepth bounds search depth; honored only by Solve (DFS). Zero
	// means unbounded.
	MaxDepth int
}

// Result is the single value produced by every solver entry point on
// termination.
type Result struct {
	Status        Status           `json:"status"`
	Moves         []puzzle.Move    `json:"moves"`
	StateHistory  []puzzle.State   `json:"stateHistory"`
	Actions       []string         `json:"actions"`
	Metrics       progress.Metrics `json:"metrics"`
	VehicleLabels []string         `json:"vehicleLabels"`
}

// Run dispatches to one of BFS, Solve, Backtrack, or AStar by name,
// the single switchboard cmd/rushsolve and internal/api both use so
// neither has to duplicate the algorithm-name mapping.
func Run(algorithm string, b *puzzle.Board, opts Options) (Result, error) {
	switch algorithm {
	case "bfs":
		return BFS(b, opts), nil
	case "dfs":
		return Solve(b, opts), nil
	case "backtrack":
		return Backtrack(b, opts), nil
	case "astar":
		return AStar(b, opts), nil
	default:
		return Result{}, fmt.Errorf("unknown algorithm %q", algorithm)
	}
}

// abortedResult builds the canonical Result for an invocation that
// observed cancellation: empty moves, a one-element history holding
// only the initial state, and depth 0, regardless of any partial
// solution already found.
func abortedResult(b *puzzle.Board, start time.Time, explored, frontier int) Result {
	return Result{
		Status:        Aborted,
		Moves:         nil,
		StateHistory:  []puzzle.State{b.InitialState()},
		Actions:       nil,
		VehicleLabels: b.VehicleLabels(),
		Metrics: progress.Metrics{
			Explored: explored,
			Frontier: frontier,
			Depth:    0,
			TimeMs:   time.Since(start).Milliseconds(),
		},
	}
}

// buildResult walks a chain of moves taken from the initial state and
// assembles the StateHistory/Actions/Metrics that every solved or
// unsolved Result shares.
func buildResult(b *puzzle.Board, status Status, moves []puzzle.Move, h *progress.Harness, frontier int) Result {
	history := make([]puzzle.State, len(moves)+1)
	actions := make([]string, len(moves))
	history[0] = b.InitialState()
	s := history[0]
	for i, m := range moves {
		s = b.Apply(s, m)
		history[i+1] = s
		actions[i] = b.Describe(m)
	}
	depth := 0
	if status == Solved {
		depth = len(moves)
	}
	metrics := h.Final(frontier, depth)
	return Result{
		Status:        status,
		Moves:         moves,
		StateHistory:  history,
		Actions:       actions,
		VehicleLabels: b.VehicleLabels(),
		Metrics:       metrics,
	}
}
