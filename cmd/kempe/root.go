package main

import (
	"honeycomb/internal/logging"
	"honeycomb/internal/sims/kempe"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kempe",
		Short: "Monte-Carlo Kempe-chain updates of a three-coloured honeycomb lattice",
		Long: `kempe applies random Kempe-chain colour swaps to an L x L honeycomb lattice
with periodic boundaries, checking the three-colour constraint after every move.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "", "YAML run configuration")
	root.PersistentFlags().AddGoFlagSet(logging.Flags(1))

	root.AddCommand(newRunCmd(), newSweepCmd(), newCheckCmd(), newShowCmd())
	return root
}

// bindConfig registers the run flags on cmd with the default values.
func bindConfig(cmd *cobra.Command) {
	cfg := kempe.DefaultConfig()
	cfg.Bind(cmd.Flags())
}

// loadConfig layers the defaults, the --config file and the flags the user
// set, in that order.
func loadConfig(cmd *cobra.Command) (kempe.Config, error) {
	cfg := kempe.DefaultConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		c, err := kempe.LoadConfig(path)
		if err != nil {
			return cfg, errors.Wrapf(err, "config %s", path)
		}
		cfg = c
	}
	if err := cfg.Apply(kempe.ChangedFlags(cmd.Flags())); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}
