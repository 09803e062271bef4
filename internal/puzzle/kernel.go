package puzzle

import (
	"sort"
	"strconv"
	"strings"
)

// emptyCell marks an unoccupied entry in an Occupancy matrix.
const emptyCell = -1

// Occupancy projects a State onto an Rows x Cols matrix whose entry at
// (r, c) is the index of the occupying vehicle, or emptyCell if no
// vehicle covers that cell.
func (b *Board) Occupancy(s State) [][]int {
	occ := make([][]int, b.Rows)
	for r := range occ {
		row := make([]int, b.Cols)
		for c := range row {
			row[c] = emptyCell
		}
		occ[r] = row
	}
	for vi, v := range b.Vehicles {
		for _, cell := range v.Cells(s[vi]) {
			occ[cell.Row][cell.Col] = vi
		}
	}
	return occ
}

// leadingCell returns the cell that would be newly entered if vehicle
// v, anchored at anchor, slid `step` further cells in direction d.
func leadingCell(v Vehicle, anchor Cell, d Direction, step int) Cell {
	switch d {
	case Left:
		return Cell{anchor.Row, anchor.Col - step}
	case Right:
		return Cell{anchor.Row, anchor.Col + v.Length - 1 + step}
	case Up:
		return Cell{anchor.Row - step, anchor.Col}
	case Down:
		return Cell{anchor.Row + v.Length - 1 + step, anchor.Col}
	default:
		return anchor
	}
}

// inBounds reports whether cell lies within the board's grid.
func (b *Board) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < b.Rows && c.Col >= 0 && c.Col < b.Cols
}

// Successors enumerates every legal Move from State s: for each
// vehicle and each direction its orientation allows, every step length
// for which all newly-covered cells are empty, stopping at the first
// blocker or the grid edge. The result is sorted by vehicle index
// ascending, then by direction (down < left < right < up), which is
// the deterministic order §4.6 requires for DFS/Backtracking and is
// harmless for BFS/A*.
func (b *Board) Successors(s State) []Move {
	occ := b.Occupancy(s)
	var moves []Move
	for vi, v := range b.Vehicles {
		anchor := s[vi]
		for _, d := range v.Directions() {
			for step := 1; ; step++ {
				lead := leadingCell(v, anchor, d, step)
				if !b.inBounds(lead) {
					break
				}
				if occupant := occ[lead.Row][lead.Col]; occupant != emptyCell && occupant != vi {
					break
				}
				moves = append(moves, Move{VehicleIndex: vi, Direction: d, Steps: step})
			}
		}
	}
	sort.Slice(moves, func(i, j int) bool {
		if moves[i].VehicleIndex != moves[j].VehicleIndex {
			return moves[i].VehicleIndex < moves[j].VehicleIndex
		}
		if moves[i].Direction != moves[j].Direction {
			return moves[i].Direction < moves[j].Direction
		}
		return moves[i].Steps < moves[j].Steps
	})
	return moves
}

// Apply returns a new State in which vehicle m.VehicleIndex has
// translated by m.Steps cells in m.Direction; s is not mutated.
func (b *Board) Apply(s State, m Move) State {
	next := s.Clone()
	dr, dc := m.Direction.Delta()
	anchor := next[m.VehicleIndex]
	next[m.VehicleIndex] = Cell{anchor.Row + dr*m.Steps, anchor.Col + dc*m.Steps}
	return next
}

// CanonicalKey serializes s as "r0,c0|r1,c1|...", suitable for
// visited-set and best-cost map membership. Two States produce
// identical keys iff they are equal.
func (b *Board) CanonicalKey(s State) string {
	var sb strings.Builder
	for i, cell := range s {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(strconv.Itoa(cell.Row))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(cell.Col))
	}
	return sb.String()
}

// InitialKey is the canonical board key used by callers that cache or
// catalog solver results: the grid dimensions plus the canonical key
// of the initial state. Unlike CanonicalKey, which names a mid-search
// State, InitialKey always names the board's starting position.
func (b *Board) InitialKey() string {
	return strconv.Itoa(b.Rows) + "x" + strconv.Itoa(b.Cols) + ":" + b.CanonicalKey(b.initial)
}

// IsGoal reports whether the goal vehicle's occupied cells in s
// include the board's exit cell.
func (b *Board) IsGoal(s State) bool {
	goal := b.Vehicles[b.GoalIndex]
	anchor := s[b.GoalIndex]
	switch goal.Orientation {
	case Horizontal:
		return b.Exit.Row == anchor.Row &&
			b.Exit.Col >= anchor.Col && b.Exit.Col <= anchor.Col+goal.Length-1
	case Vertical:
		return b.Exit.Col == anchor.Col &&
			b.Exit.Row >= anchor.Row && b.Exit.Row <= anchor.Row+goal.Length-1
	default: // Single
		return b.Exit == anchor
	}
}
