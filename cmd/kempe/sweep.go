package main

import (
	"fmt"
	"runtime"

	"honeycomb/internal/sims/kempe"
	pcore "honeycomb/pkg/core"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newSweepCmd() *cobra.Command {
	var from, to, workers int
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one independent lattice per seed record in a range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			seeds, err := pcore.LoadSeedRange(cfg.SeedFile, from, to)
			if err != nil {
				return errors.Wrap(err, "reading seeds")
			}

			failed := 0
			out := cmd.OutOrStdout()
			for _, res := range kempe.Sweep(cfg, from, seeds, workers) {
				if res.Err != nil {
					failed++
					fmt.Fprintf(out, "record %4d seeds %v: %v\n", res.Record, res.Seeds, res.Err)
					continue
				}
				st := res.Result.Stats
				fmt.Fprintf(out, "record %4d seeds %v: mean chain %.2f max %d findings %d\n",
					res.Record, res.Seeds, st.Mean(), st.Max(), len(res.Result.Findings))
			}
			if failed > 0 {
				return errors.Errorf("%d of %d runs failed", failed, len(seeds))
			}
			return nil
		},
	}
	bindConfig(cmd)
	cmd.Flags().IntVar(&from, "from", 1, "first seed record")
	cmd.Flags().IntVar(&to, "to", 8, "last seed record")
	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	return cmd
}
