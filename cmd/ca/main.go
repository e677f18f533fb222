//go:build ebiten

package main

import (
	"errors"

	"honeycomb/internal/app"
	"honeycomb/internal/core"
	"honeycomb/internal/logging"
	_ "honeycomb/internal/sims/kempe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plan-systems/klog"
	"github.com/spf13/pflag"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(logging.Flags(0))
	pflag.Parse()
	defer logging.Flush()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		klog.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("honeycomb: " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		klog.Fatal(err)
	}
}
