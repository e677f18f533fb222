package main

import (
	"honeycomb/internal/archive"
	"honeycomb/internal/sims/kempe"
	pcore "honeycomb/pkg/core"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the updater for one seed record and store the final lattice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return runOnce(cfg)
		},
	}
	bindConfig(cmd)
	return cmd
}

func runOnce(cfg kempe.Config) error {
	pair, err := pcore.LoadSeedRecord(cfg.SeedFile, cfg.Record)
	if err != nil {
		return errors.Wrap(err, "reading seeds")
	}

	metrics := kempe.NewMetrics()
	opts := []kempe.Option{kempe.WithMetrics(metrics)}
	if cfg.Archive != "" {
		arc, err := archive.Open(cfg.Archive)
		if err != nil {
			return err
		}
		defer arc.Close()
		if err := arc.Reset(); err != nil {
			return err
		}
		opts = append(opts, kempe.WithRecorder(arc))
	}

	u, err := kempe.NewUpdater(cfg, pcore.NewRNGFromPair(pair), opts...)
	if err != nil {
		return err
	}
	klog.V(1).Infof("record %d seeds %v, L=%d, %d iterations", cfg.Record, pair, cfg.Size, cfg.Iterations)

	res, err := u.Run(cfg.Iterations)
	if err != nil {
		return err
	}
	if err := kempe.SaveLattice(cfg.Output, res.Lattice); err != nil {
		return err
	}
	if cfg.MetricsOut != "" {
		if err := metrics.WriteTextfile(cfg.MetricsOut); err != nil {
			return err
		}
	}

	klog.Infof("%d iterations done, chains %v, lattice written to %s", res.Iterations, res.Stats, cfg.Output)
	if res.Violated() {
		klog.Warningf("%d constraint violations were reported during the run", len(res.Findings))
	}
	return nil
}
