package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/ricbauer/gridsat/board"
)

// renderBoard prints b with filled/shaded cells highlighted distinctly
// from empty ones, grounded on kpitt-sudoku's color.HiBlueString /
// color.HiGreenString puzzle-print helpers.
func renderBoard(b *board.Board, highlight string) {
	for r := 0; r < b.Height; r++ {
		var row strings.Builder
		for c := 0; c < b.Width; c++ {
			cell := b.At(r, c)
			switch {
			case cell == "":
				row.WriteString(color.HiBlackString(". "))
			case cell == highlight:
				row.WriteString(color.HiGreenString("%s ", cell))
			default:
				row.WriteString(color.HiBlueString("%s ", cell))
			}
		}
		fmt.Println(strings.TrimRight(row.String(), " "))
	}
}
