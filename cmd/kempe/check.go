package main

import (
	"fmt"

	"honeycomb/internal/archive"
	"honeycomb/internal/render"
	"honeycomb/internal/sims/kempe"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "check [lattice-file]",
		Short: "Verify the three-colour constraint of a stored lattice or archive",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := render.NewTerminal(cmd.OutOrStdout())
			if dir != "" {
				return checkArchive(cmd, term, dir)
			}
			path := kempe.DefaultOutput
			if len(args) == 1 {
				path = args[0]
			}
			l, err := kempe.LoadLattice(path)
			if err != nil {
				return err
			}
			vs := kempe.Validate(l)
			if err := term.Violations(vs); err != nil {
				return err
			}
			if len(vs) > 0 {
				return errors.Wrapf(kempe.ErrConstraintViolation, "%s: %d violations", path, len(vs))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d sites valid\n", path, l.Sites())
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "archive", "", "check every snapshot in this archive instead")
	return cmd
}

func checkArchive(cmd *cobra.Command, term *render.Terminal, dir string) error {
	arc, err := archive.Open(dir)
	if err != nil {
		return err
	}
	defer arc.Close()

	snaps, bad := 0, 0
	err = arc.Each(func(s archive.Snapshot) error {
		snaps++
		vs := kempe.Validate(s.Lattice)
		if len(vs) == 0 {
			return nil
		}
		bad++
		fmt.Fprintf(cmd.OutOrStdout(), "iteration %d %s:\n", s.Iteration, s.Phase)
		return term.Violations(vs)
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return errors.Wrapf(kempe.ErrConstraintViolation, "%d of %d snapshots", bad, snaps)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d snapshots valid\n", dir, snaps)
	return nil
}
