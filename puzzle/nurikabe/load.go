package nurikabe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ricbauer/gridsat/board"
	"github.com/ricbauer/gridsat/core"
)

// Load reads a Nurikabe puzzle from r: a grid of "." / "x" (empty /
// pre-shaded givens), a blank line, then an equally-sized grid of
// digits / "." (clue size, or no clue). Ragged or mismatched grids are
// structural errors.
func Load(r io.Reader) (*board.NurikabeBoard, error) {
	scanner := bufio.NewScanner(r)
	var givenLines, clueLines []string
	target := &givenLines
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			if target == &givenLines && len(givenLines) > 0 {
				target = &clueLines
			}
			continue
		}
		*target = append(*target, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(givenLines) == 0 || len(clueLines) == 0 {
		return nil, core.NewStructuralError("nurikabe", "Load", "expected two blank-line-separated grids")
	}
	if len(givenLines) != len(clueLines) {
		return nil, core.NewStructuralError("nurikabe", "Load", "given grid and clue grid must have the same number of rows")
	}

	height := len(givenLines)
	width := len(givenLines[0])
	data := make([][]string, height)
	clues := make([][]int, height)
	for r, line := range givenLines {
		if len(line) != width {
			return nil, core.NewStructuralError("nurikabe", "Load", fmt.Sprintf("given row %d has width %d, want %d", r, len(line), width))
		}
		row := make([]string, width)
		for c, ch := range line {
			switch ch {
			case '.':
				row[c] = ""
			case 'x':
				row[c] = FilledState
			default:
				return nil, core.NewStructuralError("nurikabe", "Load", fmt.Sprintf("given cell (%d,%d) has invalid rune %q", r, c, ch))
			}
		}
		data[r] = row
	}
	for r, line := range clueLines {
		if len(line) != width {
			return nil, core.NewStructuralError("nurikabe", "Load", fmt.Sprintf("clue row %d has width %d, want %d", r, len(line), width))
		}
		row := make([]int, width)
		for c, ch := range line {
			if ch == '.' {
				continue
			}
			n, err := strconv.Atoi(string(ch))
			if err != nil {
				return nil, core.NewStructuralError("nurikabe", "Load", fmt.Sprintf("clue cell (%d,%d) has invalid digit %q", r, c, ch))
			}
			row[c] = n
		}
		clues[r] = row
	}
	return board.NewNurikabeBoard(data, clues, []string{EmptyState, FilledState}), nil
}
