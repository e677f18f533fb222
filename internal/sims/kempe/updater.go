package kempe

import (
	"fmt"

	"honeycomb/internal/core"
	pcore "honeycomb/pkg/core"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
)

// Phase tells whether a Finding was taken from the pre-move snapshot or the
// lattice after the move.
type Phase string

const (
	PhaseInitial Phase = "initial"
	PhasePre     Phase = "pre"
	PhasePost    Phase = "post"
)

// Finding is a violation observed during a run.
type Finding struct {
	Iteration int
	Phase     Phase
	Violation Violation
}

func (f Finding) String() string {
	return fmt.Sprintf("iteration %d %s: %v", f.Iteration, f.Phase, f.Violation)
}

// SnapshotRecorder receives the pre and post lattice of every iteration.
type SnapshotRecorder interface {
	Record(iteration int, pre, post *Lattice) error
}

// Option tweaks an Updater.
type Option func(*Updater)

// WithMetrics reports moves and violations to m.
func WithMetrics(m *Metrics) Option {
	return func(u *Updater) { u.metrics = m }
}

// WithRecorder hands each iteration's snapshots to r.
func WithRecorder(r SnapshotRecorder) Option {
	return func(u *Updater) { u.recorder = r }
}

// WithStepBudget overrides DefaultBudget for every walk.
func WithStepBudget(n int) Option {
	return func(u *Updater) { u.budget = n }
}

// Updater owns one lattice and the random source driving it.
type Updater struct {
	cfg      Config
	lat      *Lattice
	src      pcore.RandomSource
	budget   int
	metrics  *Metrics
	stats    *ChainStats
	recorder SnapshotRecorder

	iteration int
	findings  []Finding
	last      Move
	err       error
}

// NewUpdater builds an updater over a freshly initialised lattice of
// cfg.Size.
func NewUpdater(cfg Config, src pcore.RandomSource, opts ...Option) (*Updater, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.Wrap(ErrBadConfig, "nil random source")
	}
	lat, err := NewLattice(cfg.Size)
	if err != nil {
		return nil, err
	}
	u := &Updater{
		cfg:    cfg,
		lat:    lat,
		src:    src,
		budget: DefaultBudget(cfg.Size),
		stats:  NewChainStats(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u, nil
}

// Lattice returns the live lattice.
func (u *Updater) Lattice() *Lattice { return u.lat }

// Iteration returns the number of moves applied so far.
func (u *Updater) Iteration() int { return u.iteration }

// Findings returns every violation seen so far.
func (u *Updater) Findings() []Finding { return u.findings }

// Violated reports whether any check failed during the run.
func (u *Updater) Violated() bool { return len(u.findings) > 0 }

// Stats returns the chain length accumulator.
func (u *Updater) Stats() *ChainStats { return u.stats }

// Err returns the error that stopped Step, if any.
func (u *Updater) Err() error { return u.err }

// Advance applies one move drawn from the random source.
func (u *Updater) Advance() (Move, error) {
	m := SelectMove(u.src.Next(DrawsPerMove), u.lat.size)
	m, err := applyBudget(u.lat, m, u.budget)
	if err != nil {
		u.metrics.observeWalkFailure(err)
		return m, errors.Wrapf(err, "iteration %d", u.iteration+1)
	}
	u.iteration++
	u.last = m
	u.stats.Observe(m.Length)
	u.metrics.observeMove(m)
	return m, nil
}

// audit checks l, logs and records every violation, and returns how many
// were found.
func (u *Updater) audit(iteration int, phase Phase, l *Lattice) int {
	vs := Validate(l)
	for _, v := range vs {
		klog.Warningf("There is a problem! iteration %d %s: %v", iteration, phase, v)
		u.findings = append(u.findings, Finding{Iteration: iteration, Phase: phase, Violation: v})
		u.metrics.observeViolation(v.Kind)
	}
	return len(vs)
}

// RunResult summarises a finished run.
type RunResult struct {
	Lattice    *Lattice
	Iterations int
	Findings   []Finding
	Stats      *ChainStats
}

// Violated reports whether any constraint check failed.
func (r RunResult) Violated() bool { return len(r.Findings) > 0 }

// Run applies iterations moves. Constraint violations are logged and
// recorded but do not stop the run; a walk that cannot close does.
func (u *Updater) Run(iterations int) (RunResult, error) {
	if u.iteration == 0 {
		u.audit(0, PhaseInitial, u.lat)
	}
	for n := 0; n < iterations; n++ {
		ind := u.iteration + 1
		klog.V(2).Infof("ind = %d", ind)

		pre := u.lat.Clone()
		if _, err := u.Advance(); err != nil {
			return u.result(), err
		}
		u.audit(ind, PhasePost, u.lat)
		u.audit(ind, PhasePre, pre)

		if u.recorder != nil {
			if err := u.recorder.Record(ind, pre, u.lat); err != nil {
				return u.result(), errors.Wrapf(err, "recording iteration %d", ind)
			}
		}
	}
	return u.result(), nil
}

func (u *Updater) result() RunResult {
	return RunResult{
		Lattice:    u.lat,
		Iterations: u.iteration,
		Findings:   u.findings,
		Stats:      u.stats,
	}
}

// Name returns the simulation identifier.
func (u *Updater) Name() string { return "kempe" }

// Size reports the backing grid: three cells per site across, L rows.
func (u *Updater) Size() core.Size {
	return core.Size{W: VerticesPerSite * u.lat.size, H: u.lat.size}
}

// Cells exposes the lattice buffer for rendering.
func (u *Updater) Cells() []uint8 { return u.lat.Cells() }

// Reset restores the trivial colouring and reseeds the source.
func (u *Updater) Reset(seed int64) {
	u.lat.Initialize()
	u.src = pcore.NewRNG(seed, 0)
	u.stats.Reset()
	u.iteration = 0
	u.findings = nil
	u.last = Move{}
	u.err = nil
}

// Step advances one iteration for interactive hosts. After a failed walk it
// does nothing until Reset.
func (u *Updater) Step() {
	if u.err != nil {
		return
	}
	pre := u.lat.Clone()
	if _, err := u.Advance(); err != nil {
		klog.Errorf("kempe step: %v", err)
		u.err = err
		return
	}
	u.audit(u.iteration, PhasePost, u.lat)
	u.audit(u.iteration, PhasePre, pre)
}

// Status summarises the run for display.
func (u *Updater) Status() string {
	if u.err != nil {
		return fmt.Sprintf("iteration %d stopped: %v", u.iteration, u.err)
	}
	return fmt.Sprintf("iteration %d last %v findings %d", u.iteration, u.last, len(u.findings))
}

// Parameters exposes the run configuration and progress.
func (u *Updater) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				core.IntParam("size", "Size", u.lat.size),
				core.IntParam("sites", "Sites", u.lat.Sites()),
				core.IntParam("budget", "Step budget", u.budget),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				core.IntParam("iteration", "Iteration", u.iteration),
				core.IntParam("findings", "Findings", len(u.findings)),
				core.StringParam("chains", "Chains", u.stats.String()),
				core.StringParam("seed-file", "Seed file", u.cfg.SeedFile),
				core.IntParam("record", "Record", u.cfg.Record),
			},
		},
	}}
}

func init() {
	core.Register("kempe", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		u, err := NewUpdater(c, pcore.NewRNG(int64(c.Record), 0))
		if err != nil {
			// FromMap only returns valid configs
			panic(err)
		}
		return u
	})
}
