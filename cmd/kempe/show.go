package main

import (
	"fmt"

	"honeycomb/internal/archive"
	"honeycomb/internal/render"
	"honeycomb/internal/sims/kempe"

	"github.com/spf13/cobra"
)

func newShowCmd() *cobra.Command {
	var (
		dir       string
		iteration int
		pre       bool
	)
	cmd := &cobra.Command{
		Use:   "show [lattice-file]",
		Short: "Print a stored lattice with coloured edges",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				l     *kempe.Lattice
				label string
				err   error
			)
			switch {
			case dir != "":
				l, label, err = fromArchive(dir, iteration, pre)
			case len(args) == 1:
				label = args[0]
				l, err = kempe.LoadLattice(label)
			default:
				label = kempe.DefaultOutput
				l, err = kempe.LoadLattice(label)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (L=%d)\n", label, l.Size())
			return render.NewTerminal(cmd.OutOrStdout()).Print(l)
		},
	}
	cmd.Flags().StringVar(&dir, "archive", "", "read from this snapshot archive")
	cmd.Flags().IntVar(&iteration, "iteration", 0, "archived iteration to show, 0 for the latest")
	cmd.Flags().BoolVar(&pre, "pre", false, "show the snapshot taken before the move")
	return cmd
}

func fromArchive(dir string, iteration int, pre bool) (*kempe.Lattice, string, error) {
	arc, err := archive.Open(dir)
	if err != nil {
		return nil, "", err
	}
	defer arc.Close()

	if iteration == 0 {
		s, err := arc.Latest()
		if err != nil {
			return nil, "", err
		}
		iteration = s.Iteration
		if !pre {
			return s.Lattice, fmt.Sprintf("iteration %d %s", s.Iteration, s.Phase), nil
		}
	}
	phase := kempe.PhasePost
	if pre {
		phase = kempe.PhasePre
	}
	l, err := arc.Get(iteration, phase)
	if err != nil {
		return nil, "", err
	}
	return l, fmt.Sprintf("iteration %d %s", iteration, phase), nil
}
