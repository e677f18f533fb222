package kempe

import (
	"testing"

	"honeycomb/internal/core"
	pcore "honeycomb/pkg/core"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	iteration int
	pre, post *Lattice
}

type memRecorder struct {
	rows []recorded
	err  error
}

func (r *memRecorder) Record(iteration int, pre, post *Lattice) error {
	if r.err != nil {
		return r.err
	}
	r.rows = append(r.rows, recorded{iteration: iteration, pre: pre.Clone(), post: post.Clone()})
	return nil
}

func TestRunOneIterationWithZeroDraws(t *testing.T) {
	u, err := NewUpdater(DefaultConfig(), pcore.NewDraws(0, 0, 0, 0))
	require.NoError(t, err)

	res, err := u.Run(1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.False(t, res.Violated())
	assert.Equal(t, [3]Colour{1, 0, 2}, res.Lattice.Site(0, 1))
	assert.Equal(t, 1, res.Stats.Moves())
	assert.Equal(t, 3, res.Stats.Max())
}

func TestRunKeepsConstraintAndRecordsSnapshots(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 4
	rec := &memRecorder{}
	m := NewMetrics()

	u, err := NewUpdater(cfg, pcore.NewRNG(3, 4), WithRecorder(rec), WithMetrics(m))
	require.NoError(t, err)

	res, err := u.Run(100)
	require.NoError(t, err)
	assert.Equal(t, 100, res.Iterations)
	assert.False(t, res.Violated(), "findings: %v", res.Findings)

	require.Len(t, rec.rows, 100)
	for n, row := range rec.rows {
		assert.Equal(t, n+1, row.iteration)
		assert.True(t, Valid(row.pre))
		assert.True(t, Valid(row.post))
		if n > 0 {
			assert.True(t, rec.rows[n-1].post.Equal(row.pre), "iteration %d should start where %d ended", n+1, n)
		}
	}
	assert.True(t, rec.rows[99].post.Equal(res.Lattice))

	assert.Equal(t, 100.0, testutil.ToFloat64(m.moves))
	assert.Equal(t, 0, testutil.CollectAndCount(m.violations))
	assert.Equal(t, 1, testutil.CollectAndCount(m.chainLength))
}

func TestRunIsReproducible(t *testing.T) {
	run := func() RunResult {
		u, err := NewUpdater(DefaultConfig(), pcore.NewRNG(42, 7))
		require.NoError(t, err)
		res, err := u.Run(100)
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.True(t, a.Lattice.Equal(b.Lattice))
	assert.Equal(t, a.Stats.Histogram(), b.Stats.Histogram())
}

func TestRunReportsViolationsAndContinues(t *testing.T) {
	m := NewMetrics()
	u, err := NewUpdater(DefaultConfig(), pcore.NewDraws(0, 0, 0, 0), WithMetrics(m))
	require.NoError(t, err)
	// valid site, inconsistent with its neighbours; row 0 walks never reach it
	u.Lattice().SetSite(2, 2, [3]Colour{1, 0, 2})

	res, err := u.Run(1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	require.True(t, res.Violated())

	phases := map[Phase]int{}
	for _, f := range res.Findings {
		assert.Equal(t, VertexViolation, f.Violation.Kind)
		phases[f.Phase]++
	}
	assert.Equal(t, 2, phases[PhaseInitial])
	assert.Equal(t, 2, phases[PhasePre])
	assert.Equal(t, 2, phases[PhasePost])
	assert.Equal(t, 6.0, testutil.ToFloat64(m.violations.WithLabelValues("vertex")))
}

func TestRunStopsOnNonTermination(t *testing.T) {
	m := NewMetrics()
	u, err := NewUpdater(DefaultConfig(), pcore.NewDraws(0, 0, 0, 0), WithStepBudget(2), WithMetrics(m))
	require.NoError(t, err)

	res, err := u.Run(5)
	assert.ErrorIs(t, err, ErrWalkNonTermination)
	assert.Equal(t, 0, res.Iterations)

	trivial, err := NewLattice(3)
	require.NoError(t, err)
	assert.True(t, trivial.Equal(res.Lattice))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.walkFailures.WithLabelValues(reasonNonTermination)))
}

func TestRunStopsWhenRecorderFails(t *testing.T) {
	boom := errors.New("disk full")
	u, err := NewUpdater(DefaultConfig(), pcore.NewRNG(1, 1), WithRecorder(&memRecorder{err: boom}))
	require.NoError(t, err)

	_, err = u.Run(3)
	assert.ErrorIs(t, err, boom)
}

func TestNewUpdaterValidatesConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 1
	_, err := NewUpdater(cfg, pcore.NewRNG(1, 1))
	assert.ErrorIs(t, err, ErrBadSize)

	_, err = NewUpdater(DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrBadConfig)
}

func TestRegisteredSim(t *testing.T) {
	factory, ok := core.Sims()["kempe"]
	require.True(t, ok)

	sim := factory(map[string]string{"size": "4"})
	assert.Equal(t, "kempe", sim.Name())
	assert.Equal(t, core.Size{W: 12, H: 4}, sim.Size())
	assert.Len(t, sim.Cells(), 48)

	sim.Reset(9)
	for n := 0; n < 20; n++ {
		sim.Step()
	}
	u := sim.(*Updater)
	assert.NoError(t, u.Err())
	assert.Equal(t, 20, u.Iteration())
	assert.True(t, Valid(u.Lattice()))

	status, ok := sim.(core.StatusProvider)
	require.True(t, ok)
	assert.Contains(t, status.Status(), "iteration 20")

	params := sim.(core.ParameterProvider).Parameters()
	p, ok := params.Lookup("size")
	require.True(t, ok)
	assert.Equal(t, "4", p.Value)

	sim.Reset(9)
	assert.Equal(t, 0, u.Iteration())
	assert.True(t, Valid(u.Lattice()))
}
