package puzzle

import (
	"reflect"
	"testing"
)

// board6x6 is a 6-row, 7-column board: the goal vehicle on row 2 is
// two moves from the exit on the right edge (move the vertical blocker
// in column 5 out of row 2, then slide the goal vehicle five cells).
const board6x6 = `
. . . . . . .
. . . . . . .
> B . . . | .
. . . - - | .
. . . . . . .
. . . . . . .
Salida: 2,6
`

func mustParse(t *testing.T, text string) *Board {
	t.Helper()
	b, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return b
}

func TestOccupancyNoOverlap(t *testing.T) {
	b := mustParse(t, board6x6)
	occ := b.Occupancy(b.InitialState())
	seen := map[int]bool{}
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if vi := occ[r][c]; vi != emptyCell {
				key := vi*1000 + r*100 + c
				if seen[key] {
					t.Fatalf("cell (%d,%d) double-claimed", r, c)
				}
				seen[key] = true
			}
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	b := mustParse(t, board6x6)
	s0 := b.InitialState()
	before := s0.Clone()
	moves := b.Successors(s0)
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move")
	}
	_ = b.Apply(s0, moves[0])
	if !reflect.DeepEqual(s0, before) {
		t.Fatalf("Apply mutated its input: got %v, want %v", s0, before)
	}
}

func TestSuccessorsDeterministicOrder(t *testing.T) {
	b := mustParse(t, board6x6)
	s0 := b.InitialState()
	m1 := b.Successors(s0)
	m2 := b.Successors(s0)
	if !reflect.DeepEqual(m1, m2) {
		t.Fatalf("Successors not deterministic: %v vs %v", m1, m2)
	}
	for i := 1; i < len(m1); i++ {
		a, c := m1[i-1], m1[i]
		if a.VehicleIndex > c.VehicleIndex {
			t.Fatalf("not sorted by vehicle index at %d: %+v then %+v", i, a, c)
		}
		if a.VehicleIndex == c.VehicleIndex {
			if a.Direction > c.Direction {
				t.Fatalf("not sorted by direction at %d: %+v then %+v", i, a, c)
			}
		}
	}
}

func TestSuccessorsStopAtBlocker(t *testing.T) {
	// goal vehicle at (0,0) len 2 horizontal; a single-cell vertical
	// blocker ("|" with no vertical neighbor) sits at (0,3), so the
	// goal can slide right 1 cell but not 2 or more.
	b := mustParse(t, "B B . | . .\nSalida: 0,5\n")
	s0 := b.InitialState()
	var rightSteps []int
	for _, m := range b.Successors(s0) {
		if m.VehicleIndex == b.GoalIndex && m.Direction == Right {
			rightSteps = append(rightSteps, m.Steps)
		}
	}
	if !reflect.DeepEqual(rightSteps, []int{1}) {
		t.Fatalf("right steps = %v, want [1]", rightSteps)
	}
}

func TestIsGoalHorizontal(t *testing.T) {
	b := mustParse(t, "B B . . . .\nSalida: 0,5\n")
	s := b.InitialState()
	if b.IsGoal(s) {
		t.Fatal("should not be solved initially")
	}
	moves := b.Successors(s)
	var found bool
	for _, m := range moves {
		if m.VehicleIndex == b.GoalIndex && m.Direction == Right && m.Steps == 4 {
			found = true
			s2 := b.Apply(s, m)
			if !b.IsGoal(s2) {
				t.Fatalf("expected goal state after sliding to the exit, state=%v", s2)
			}
		}
	}
	if !found {
		t.Fatal("expected a right-slide of 4 to be a legal move")
	}
}

func TestCanonicalKeyEquality(t *testing.T) {
	b := mustParse(t, board6x6)
	s0 := b.InitialState()
	s1 := s0.Clone()
	if b.CanonicalKey(s0) != b.CanonicalKey(s1) {
		t.Fatal("equal states produced different keys")
	}
	moves := b.Successors(s0)
	if len(moves) == 0 {
		t.Fatal("expected moves")
	}
	s2 := b.Apply(s0, moves[0])
	if b.CanonicalKey(s0) == b.CanonicalKey(s2) {
		t.Fatal("distinct states produced the same key")
	}
}

func TestDescribe(t *testing.T) {
	b := mustParse(t, "B B . . . .\nSalida: 0,5\n")
	m := Move{VehicleIndex: b.GoalIndex, Direction: Right, Steps: 1}
	if got, want := b.Describe(m), "mover carro objetivo hacia la derecha"; got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
	m.Steps = 3
	if got, want := b.Describe(m), "mover carro objetivo hacia la derecha 3 espacios"; got != want {
		t.Fatalf("Describe = %q, want %q", got, want)
	}
}
