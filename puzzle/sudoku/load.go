package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/core"
)

// Load reads a square grid of digits from r, one row per line, "."
// marking an empty cell. The grid's side length n is also the state
// count: states are "1".."n". A malformed grid (ragged rows, a
// non-digit/non-'.' rune, or a digit outside 1..n) is a structural
// error, matching the "fail loudly on programmer/input error" rule.
func Load(r io.Reader) (*board.Board, []string, error) {
	var rows [][]string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		row := make([]string, 0, len(line))
		for _, ch := range line {
			if ch == '.' {
				row = append(row, "")
				continue
			}
			row = append(row, string(ch))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return nil, nil, core.NewStructuralError("sudoku", "Load", "empty puzzle file")
	}
	n := len(rows[0])
	if n != len(rows) {
		return nil, nil, core.NewStructuralError("sudoku", "Load", fmt.Sprintf("grid must be square, got %d rows of width %d", len(rows), n))
	}
	states := make([]string, n)
	for i := range states {
		states[i] = strconv.Itoa(i + 1)
	}
	validStates := map[string]bool{}
	for _, s := range states {
		validStates[s] = true
	}
	for r, row := range rows {
		if len(row) != n {
			return nil, nil, core.NewStructuralError("sudoku", "Load", fmt.Sprintf("row %d has width %d, want %d", r, len(row), n))
		}
		for c, cell := range row {
			if cell != "" && !validStates[cell] {
				return nil, nil, core.NewStructuralError("sudoku", "Load", fmt.Sprintf("cell (%d,%d) has invalid digit %q for a %dx%d grid", r, c, cell, n, n))
			}
		}
	}
	return board.New(rows, states), states, nil
}
