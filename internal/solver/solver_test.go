package solver

import (
	"reflect"
	"testing"

	"github.com/JiCorrales/traffic-jam-solver/internal/progress"
	"github.com/JiCorrales/traffic-jam-solver/internal/puzzle"
)

func mustParse(t *testing.T, text string) *puzzle.Board {
	t.Helper()
	b, err := puzzle.Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return b
}

// allSolvers runs every one of the four entry points under the same
// Options and returns their Results keyed by name. The result is a
// map, so ranging over it visits the solvers in no fixed order.
func allSolvers(b *puzzle.Board, opts Options) map[string]Result {
	return map[string]Result{
		"bfs":       BFS(b, opts),
		"dfs":       Solve(b, opts),
		"backtrack": Backtrack(b, opts),
		"astar":     AStar(b, opts),
	}
}

// checkUniversalProperties asserts properties 1, 2, 5, and 6 of §8
// against a solved or unsolved Result; callers assert status-specific
// properties themselves.
func checkUniversalProperties(t *testing.T, name string, b *puzzle.Board, r Result) {
	t.Helper()
	if len(r.VehicleLabels) != len(b.Vehicles) {
		t.Errorf("%s: vehicleLabels length = %d, want %d", name, len(r.VehicleLabels), len(b.Vehicles))
	}
	for i, a := range r.Actions {
		if a == "" {
			t.Errorf("%s: actions[%d] is empty", name, i)
		}
	}
	if r.Status == Solved {
		if len(r.Moves) == 0 && len(r.StateHistory) != 1 {
			t.Errorf("%s: solved with zero moves must have a one-state history", name)
		}
		if r.Metrics.Depth != len(r.Moves) {
			t.Errorf("%s: metrics.depth = %d, want %d", name, r.Metrics.Depth, len(r.Moves))
		}
		if len(r.StateHistory) != len(r.Moves)+1 {
			t.Errorf("%s: stateHistory length = %d, want %d", name, len(r.StateHistory), len(r.Moves)+1)
		}
		replay := b.InitialState()
		if !reflect.DeepEqual(replay, r.StateHistory[0]) {
			t.Errorf("%s: stateHistory[0] is not the initial state", name)
		}
		for i, m := range r.Moves {
			replay = b.Apply(replay, m)
			if !reflect.DeepEqual(replay, r.StateHistory[i+1]) {
				t.Errorf("%s: stateHistory[%d] does not match replaying moves", name, i+1)
			}
		}
		if !b.IsGoal(r.StateHistory[len(r.StateHistory)-1]) {
			t.Errorf("%s: final state does not satisfy the goal test", name)
		}
		for _, s := range r.StateHistory {
			assertNoOverlap(t, name, b, s)
		}
	}
}

func assertNoOverlap(t *testing.T, name string, b *puzzle.Board, s puzzle.State) {
	t.Helper()
	claimed := map[puzzle.Cell]bool{}
	for vi, v := range b.Vehicles {
		for _, cell := range v.Cells(s[vi]) {
			if cell.Row < 0 || cell.Row >= b.Rows || cell.Col < 0 || cell.Col >= b.Cols {
				t.Fatalf("%s: vehicle %d out of bounds at %v", name, vi, cell)
			}
			if claimed[cell] {
				t.Fatalf("%s: cell %v double-claimed", name, cell)
			}
			claimed[cell] = true
		}
	}
}

func TestScenarioA_OptimalBFSLength(t *testing.T) {
	// Two single-cell vertical blockers must each move once before the
	// goal vehicle can slide the remaining five cells in a single move:
	// three moves total is the minimum possible.
	b := mustParse(t, "B B . | . | .\n. . . . . . .\nSalida: 0,6\n")
	r := BFS(b, Options{})
	if r.Status != Solved {
		t.Fatalf("status = %v, want solved", r.Status)
	}
	if len(r.Moves) != 3 {
		t.Fatalf("moves.length = %d, want 3", len(r.Moves))
	}
	final := r.StateHistory[3]
	if !b.IsGoal(final) {
		t.Fatalf("stateHistory[3] does not satisfy the goal test: %v", final)
	}
}

func TestScenarioB_LeftExitSingleMove(t *testing.T) {
	b := mustParse(t, ". . . B B .\nSalida: 0,1\n")
	for _, name := range []string{"bfs", "astar", "backtrack"} {
		var r Result
		switch name {
		case "bfs":
			r = BFS(b, Options{})
		case "astar":
			r = AStar(b, Options{})
		case "backtrack":
			r = Backtrack(b, Options{})
		}
		if r.Status != Solved {
			t.Fatalf("%s: status = %v, want solved", name, r.Status)
		}
		if len(r.Moves) != 1 {
			t.Fatalf("%s: moves.length = %d, want 1", name, len(r.Moves))
		}
		if r.Moves[0].Direction != puzzle.Left {
			t.Fatalf("%s: move direction = %v, want left", name, r.Moves[0].Direction)
		}
	}
}

func TestScenarioC_PreAssertedCancellation(t *testing.T) {
	b := mustParse(t, "B B . . . .\nSalida: 0,5\n")
	token := &progress.Token{}
	token.Cancel()
	for name, r := range allSolvers(b, Options{Cancel: token}) {
		if r.Status != Aborted {
			t.Errorf("%s: status = %v, want aborted", name, r.Status)
		}
		if len(r.Moves) != 0 {
			t.Errorf("%s: moves = %v, want empty", name, r.Moves)
		}
		if len(r.StateHistory) != 1 {
			t.Errorf("%s: stateHistory length = %d, want 1", name, len(r.StateHistory))
		}
		if r.Metrics.Depth != 0 {
			t.Errorf("%s: metrics.depth = %d, want 0", name, r.Metrics.Depth)
		}
	}
}

func TestScenarioD_AlreadySolvedBoard(t *testing.T) {
	b := mustParse(t, "B B . . . .\nSalida: 0,1\n")
	for name, r := range allSolvers(b, Options{}) {
		if r.Status != Solved {
			t.Errorf("%s: status = %v, want solved", name, r.Status)
		}
		if len(r.Moves) != 0 {
			t.Errorf("%s: moves = %v, want empty", name, r.Moves)
		}
		if len(r.StateHistory) != 1 || !reflect.DeepEqual(r.StateHistory[0], b.InitialState()) {
			t.Errorf("%s: stateHistory = %v, want [initial]", name, r.StateHistory)
		}
	}
}

func TestScenarioE_NoSolution(t *testing.T) {
	// Two single-cell vertical vehicles flank the goal vehicle with no
	// gap and no room above or below (a single-row board), so nothing
	// on the board can ever move. The exit sits outside the grid so it
	// can never be satisfied either.
	b := mustParse(t, "| B B |\nSalida: 0,10\n")
	for name, r := range allSolvers(b, Options{}) {
		if r.Status != Unsolved {
			t.Errorf("%s: status = %v, want unsolved", name, r.Status)
		}
		if r.Metrics.Explored != 1 {
			t.Errorf("%s: explored = %d, want 1 (only the initial state is reachable)", name, r.Metrics.Explored)
		}
	}
}

func TestScenarioF_Determinism(t *testing.T) {
	b := mustParse(t, "B B . | . | .\n. . . . . . .\nSalida: 0,6\n")
	for name, run := range map[string]func() Result{
		"bfs":       func() Result { return BFS(b, Options{}) },
		"dfs":       func() Result { return Solve(b, Options{}) },
		"backtrack": func() Result { return Backtrack(b, Options{}) },
		"astar":     func() Result { return AStar(b, Options{}) },
	} {
		first := run()
		second := run()
		if !reflect.DeepEqual(first.Moves, second.Moves) {
			t.Errorf("%s: moves not deterministic: %v vs %v", name, first.Moves, second.Moves)
		}
		if !reflect.DeepEqual(first.StateHistory, second.StateHistory) {
			t.Errorf("%s: stateHistory not deterministic", name)
		}
		if !reflect.DeepEqual(first.Actions, second.Actions) {
			t.Errorf("%s: actions not deterministic: %v vs %v", name, first.Actions, second.Actions)
		}
		if !reflect.DeepEqual(first.VehicleLabels, second.VehicleLabels) {
			t.Errorf("%s: vehicleLabels not deterministic", name)
		}
	}
}

func TestUniversalPropertiesAcrossBoards(t *testing.T) {
	boards := []string{
		"B B . | . | .\n. . . . . . .\nSalida: 0,6\n",
		". . . B B .\nSalida: 0,1\n",
		"B B . . . .\nSalida: 0,1\n",
	}
	for _, text := range boards {
		b := mustParse(t, text)
		for name, r := range allSolvers(b, Options{}) {
			checkUniversalProperties(t, name, b, r)
		}
	}
}

func TestBFSFindsMinimumMoveCount(t *testing.T) {
	b := mustParse(t, "B B . | . | .\n. . . . . . .\nSalida: 0,6\n")
	bfsResult := BFS(b, Options{})
	astarResult := AStar(b, Options{})
	if bfsResult.Status != Solved {
		t.Fatal("expected BFS to solve the board")
	}
	if astarResult.Status == Solved && len(bfsResult.Moves) > len(astarResult.Moves) {
		t.Fatalf("BFS moves (%d) exceed A* moves (%d); BFS must be minimal", len(bfsResult.Moves), len(astarResult.Moves))
	}
}

func TestHeuristicZeroWhenAlignedAndContained(t *testing.T) {
	b := mustParse(t, "B B . . . .\nSalida: 0,1\n")
	if got := heuristic(b, b.InitialState()); got != 0 {
		t.Fatalf("heuristic = %d, want 0 (exit already covered)", got)
	}
}

func TestHeuristicMisalignedIsManhattan(t *testing.T) {
	b := mustParse(t, ". . .\n. B .\n. . .\nSalida: 0,0\n")
	got := heuristic(b, b.InitialState())
	if got != 2 {
		t.Fatalf("heuristic = %d, want 2 (single vehicle, Manhattan distance)", got)
	}
}

func TestHeuristicCountsBlockersWithPenalty(t *testing.T) {
	b := mustParse(t, "B B . | . .\nSalida: 0,5\n")
	// anchor (0,0) length2, tail col1; exit col5 is to the right, with
	// one blocking vehicle in between at col3: dist (5-1=4) + 2*1.
	if got, want := heuristic(b, b.InitialState()), 6; got != want {
		t.Fatalf("heuristic = %d, want %d", got, want)
	}
}

func TestHeuristicDoesNotPanicOnOutOfGridExit(t *testing.T) {
	b := mustParse(t, "| B B |\nSalida: 0,10\n")
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("heuristic panicked on an out-of-grid exit: %v", r)
		}
	}()
	heuristic(b, b.InitialState())
}
