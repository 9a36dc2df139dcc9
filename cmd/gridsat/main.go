// Command gridsat loads a grid-logic puzzle from a text file, solves
// it against the CNF core in sat/rule/solve, and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gridsat",
		Short: "Solve grid-logic puzzles on a CNF/SAT core",
		Long: `gridsat compiles a puzzle (Sudoku, Nurikabe) into a propositional
CNF formula and searches it with an exclusivity-aware backtracking solver.`,
	}
	root.PersistentFlags().Bool("verbose", false, "trace solve-phase internals to stderr")

	solve := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle and print the first solution",
	}
	solve.AddCommand(sudokuCmd(), nurikabeCmd())
	root.AddCommand(solve)
	return root
}
