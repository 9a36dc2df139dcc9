package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ricbauer/gridsat/puzzle/nurikabe"
	"github.com/ricbauer/gridsat/solve"
)

func nurikabeCmd() *cobra.Command {
	var file string
	var maxSols int

	cmd := &cobra.Command{
		Use:   "nurikabe",
		Short: "Solve a Nurikabe puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			return runNurikabe(file, maxSols, verbose)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "path to the puzzle file (required)")
	cmd.Flags().IntVar(&maxSols, "max-sols", 1, "maximum number of solutions to report")
	cmd.MarkFlagRequired("file")
	return cmd
}

func runNurikabe(file string, maxSols int, verbose bool) error {
	f, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "opening %s", file)
	}
	defer f.Close()

	nb, err := nurikabe.Load(f)
	if err != nil {
		return errors.Wrapf(err, "loading %s", file)
	}

	group, err := nurikabe.New(nb)
	if err != nil {
		return errors.Wrap(err, "building nurikabe rules")
	}

	solver, err := solve.New(nb.Board, group)
	if err != nil {
		return errors.Wrap(err, "compiling nurikabe rules")
	}
	solver.Logger = newLogger(verbose)

	return reportSolutions(solver, maxSols, nurikabe.FilledState)
}
