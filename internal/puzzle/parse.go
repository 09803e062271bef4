package puzzle

import (
	"regexp"
	"strconv"
	"strings"
)

// exitLineRE matches the case-insensitive "Salida: <row>,<col>" line
// that terminates the board portion of a puzzle file.
var exitLineRE = regexp.MustCompile(`(?i)^Salida\s*:\s*(-?\d+)\s*,\s*(-?\d+)\s*$`)

// exitPrefixRE matches any line that starts like an exit line, whether
// or not its coordinates are well formed.
var exitPrefixRE = regexp.MustCompile(`(?i)^Salida\s*:`)

// horizontalTokens and verticalTokens classify which raw tokens can
// belong to a horizontal or vertical vehicle. 'B' is deliberately a
// member of both: its vehicle's true orientation is disambiguated
// from its neighbors in classifyGoalCell.
var (
	horizontalTokens = map[string]bool{"-": true, ">": true, "<": true, "B": true}
	verticalTokens   = map[string]bool{"|": true, "v": true, "B": true}
)

func isEmptyToken(tok string) bool { return tok == "." }

// Parse converts puzzle text into a Board, or returns an Error
// describing why it could not.
func Parse(text string) (*Board, error) {
	lines := normalizeLines(text)
	if len(lines) == 0 {
		return nil, parseError(EmptyPuzzle, "input is blank")
	}

	exitLineIdx := -1
	for i, line := range lines {
		if exitPrefixRE.MatchString(line) {
			if !exitLineRE.MatchString(line) {
				return nil, parseError(MalformedExit, "exit line %q is not 'Salida: row,col'", line)
			}
			exitLineIdx = i
			break
		}
	}
	if exitLineIdx == -1 {
		return nil, parseError(MissingExit, "no line matches 'Salida: row,col'")
	}

	m := exitLineRE.FindStringSubmatch(lines[exitLineIdx])
	row, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, parseError(MalformedExit, "row %q is not an integer", m[1])
	}
	col, err := strconv.Atoi(m[2])
	if err != nil {
		return nil, parseError(MalformedExit, "col %q is not an integer", m[2])
	}

	boardLines := lines[:exitLineIdx]
	if len(boardLines) == 0 {
		return nil, parseError(EmptyBoard, "no board rows precede the Salida line")
	}

	grid := make([][]string, len(boardLines))
	cols := -1
	for i, line := range boardLines {
		tokens := strings.Fields(line)
		if cols == -1 {
			cols = len(tokens)
		} else if len(tokens) != cols {
			return nil, parseError(MalformedBoard,
				"row %d has %d columns, expected %d", i, len(tokens), cols)
		}
		grid[i] = tokens
	}
	if cols <= 0 {
		return nil, parseError(EmptyBoard, "board rows contain no tokens")
	}
	for r, row := range grid {
		for c, tok := range row {
			if !isEmptyToken(tok) && !horizontalTokens[tok] && !verticalTokens[tok] {
				return nil, parseError(MalformedBoard, "unrecognized token %q at (%d,%d)", tok, r, c)
			}
		}
	}

	board := &Board{Rows: len(grid), Cols: cols, Exit: Cell{Row: row, Col: col}, GoalIndex: -1}
	visited := make([][]bool, board.Rows)
	for r := range visited {
		visited[r] = make([]bool, board.Cols)
	}

	nextNumber := 1
	for r := 0; r < board.Rows; r++ {
		for c := 0; c < board.Cols; c++ {
			if visited[r][c] || isEmptyToken(grid[r][c]) {
				continue
			}
			v, anchor, covered := extractVehicle(grid, visited, board.Rows, board.Cols, r, c)
			v.Index = len(board.Vehicles)
			if v.IsGoal {
				v.Label = "carro objetivo"
				board.GoalIndex = v.Index
			} else {
				v.Label = strconv.Itoa(nextNumber)
				nextNumber++
			}
			board.Vehicles = append(board.Vehicles, v)
			board.initial = append(board.initial, anchor)
			for _, cell := range covered {
				visited[cell.Row][cell.Col] = true
			}
		}
	}

	if board.GoalIndex == -1 {
		return nil, parseError(MissingGoalVehicle, "no vehicle contains a 'B' cell")
	}
	return board, nil
}

// normalizeLines splits on LF/CRLF, strips trailing whitespace from
// every line, and discards blank lines entirely.
func normalizeLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimRight(l, " \t\r")
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// extractVehicle grows the vehicle seeded at (r, c). It does not write
// to the visited matrix; the caller marks the returned covered cells
// as visited. It returns the vehicle (Index/Label unset), its anchor,
// and its covered cells.
func extractVehicle(grid [][]string, visited [][]bool, rows, cols, r, c int) (Vehicle, Cell, []Cell) {
	tok := grid[r][c]
	orientation, isGoal := classify(grid, rows, cols, r, c, tok)

	var covered []Cell
	var anchor Cell
	switch orientation {
	case Horizontal:
		lo, hi := c, c
		for lo-1 >= 0 && horizontalTokens[grid[r][lo-1]] {
			lo--
		}
		for hi+1 < cols && horizontalTokens[grid[r][hi+1]] {
			hi++
		}
		anchor = Cell{r, lo}
		for col := lo; col <= hi; col++ {
			covered = append(covered, Cell{r, col})
			if grid[r][col] == "B" {
				isGoal = true
			}
		}
		return Vehicle{Orientation: Horizontal, Length: hi - lo + 1, IsGoal: isGoal}, anchor, covered
	case Vertical:
		lo, hi := r, r
		for lo-1 >= 0 && verticalTokens[grid[lo-1][c]] {
			lo--
		}
		for hi+1 < rows && verticalTokens[grid[hi+1][c]] {
			hi++
		}
		anchor = Cell{lo, c}
		for row := lo; row <= hi; row++ {
			covered = append(covered, Cell{row, c})
			if grid[row][c] == "B" {
				isGoal = true
			}
		}
		return Vehicle{Orientation: Vertical, Length: hi - lo + 1, IsGoal: isGoal}, anchor, covered
	default: // Single
		anchor = Cell{r, c}
		covered = []Cell{anchor}
		return Vehicle{Orientation: Single, Length: 1, IsGoal: tok == "B"}, anchor, covered
	}
}

// classify determines the orientation of the vehicle seeded at (r, c)
// with token tok, per §4.1's disambiguation rules. It also reports
// whether the seed cell itself is a 'B' cell.
func classify(grid [][]string, rows, cols, r, c int, tok string) (Orientation, bool) {
	isGoal := tok == "B"
	if tok != "B" {
		if horizontalTokens[tok] {
			return Horizontal, isGoal
		}
		return Vertical, isGoal
	}
	if c-1 >= 0 && horizontalTokens[grid[r][c-1]] {
		return Horizontal, isGoal
	}
	if c+1 < cols && horizontalTokens[grid[r][c+1]] {
		return Horizontal, isGoal
	}
	if r-1 >= 0 && verticalTokens[grid[r-1][c]] {
		return Vertical, isGoal
	}
	if r+1 < rows && verticalTokens[grid[r+1][c]] {
		return Vertical, isGoal
	}
	return Single, isGoal
}
