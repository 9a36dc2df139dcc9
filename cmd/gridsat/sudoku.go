package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ricbauer/gridsat/puzzle/sudoku"
	"github.com/ricbauer/gridsat/solve"
)

func sudokuCmd() *cobra.Command {
	var file string
	var boxH, boxW, maxSols int

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Solve a Sudoku puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runSudoku(file, boxH, boxW, maxSols, verbose)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the puzzle file (required)")
	cmd.Flags().IntVar(&boxH, "box-h", 0, "box height (defaults to sqrt(n) for an n x n grid)")
	cmd.Flags().IntVar(&boxW, "box-w", 0, "box width (defaults to sqrt(n) for an n x n grid)")
	cmd.Flags().IntVar(&maxSols, "max-sols", 1, "maximum number of solutions to report")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runSudoku(file string, boxH, boxW, maxSols int, verbose bool) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", file)
	}
	defer f.Close()

	b, states, err := sudoku.Load(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", file)
	}

	if boxH == 0 || boxW == 0 {
		h, w, ok := sudoku.DefaultBoxDims(len(states))
		if !ok {
			return errors.Errorf("%s: %d x %d grid has no square box size, pass --box-h/--box-w explicitly", file, len(states), len(states))
		}
		boxH, boxW = h, w
	}

	group := sudoku.New(b, states, boxH, boxW)
	solver, err := solve.New(b, group)
	if err != nil {
		return errors.Wrap(err, "compiling sudoku rules")
	}
	solver.Logger = newLogger(verbose)

	return reportSolutions(solver, maxSols, "")
}

func reportSolutions(solver *solve.Solver, maxSols int, highlight string) error {
	found := 0
	for range solver.Solve(context.Background(), maxSols) {
		if found > 0 {
			fmt.Println("---")
		}
		renderBoard(solver.GenerateSolvedBoard(), highlight)
		found++
	}
	if err := solver.Err(); err != nil {
		return errors.Wrap(err, "solver")
	}
	if found == 0 {
		return errUnsatisfiable
	}
	fmt.Printf("%d solution(s)\n", found)
	return nil
}
