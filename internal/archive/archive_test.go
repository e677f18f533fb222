package archive

import (
	"testing"

	"honeycomb/internal/sims/kempe"
	pcore "honeycomb/pkg/core"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openMem(t *testing.T) *Archive {
	t.Helper()
	a, err := Open("")
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestRecordAndEach(t *testing.T) {
	a := openMem(t)
	u, err := kempe.NewUpdater(kempe.DefaultConfig(), pcore.NewRNG(5, 6), kempe.WithRecorder(a))
	require.NoError(t, err)

	res, err := u.Run(12)
	require.NoError(t, err)

	var seen []Snapshot
	require.NoError(t, a.Each(func(s Snapshot) error {
		seen = append(seen, s)
		return nil
	}))
	require.Len(t, seen, 24)
	for n, s := range seen {
		assert.Equal(t, n/2+1, s.Iteration)
		if n%2 == 0 {
			assert.Equal(t, kempe.PhasePre, s.Phase)
		} else {
			assert.Equal(t, kempe.PhasePost, s.Phase)
		}
		assert.True(t, kempe.Valid(s.Lattice))
	}

	latest, err := a.Latest()
	require.NoError(t, err)
	assert.Equal(t, 12, latest.Iteration)
	assert.Equal(t, kempe.PhasePost, latest.Phase)
	assert.True(t, latest.Lattice.Equal(res.Lattice))

	first, err := a.Get(1, kempe.PhasePre)
	require.NoError(t, err)
	trivial, err := kempe.NewLattice(3)
	require.NoError(t, err)
	assert.True(t, first.Equal(trivial))
}

func TestEmptyArchive(t *testing.T) {
	a := openMem(t)

	_, err := a.Latest()
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)

	_, err = a.Get(1, kempe.PhasePost)
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)

	calls := 0
	require.NoError(t, a.Each(func(Snapshot) error { calls++; return nil }))
	assert.Zero(t, calls)
}

func TestArchiveOnDisk(t *testing.T) {
	dir := t.TempDir()
	a, err := Open(dir)
	require.NoError(t, err)

	l, err := kempe.NewLattice(4)
	require.NoError(t, err)
	post := l.Clone()
	_, err = kempe.Apply(post, kempe.Move{I0: 2, J0: 1, Col1: 1, Col2: 2})
	require.NoError(t, err)
	require.NoError(t, a.Record(1, l, post))
	require.NoError(t, a.Close())

	a, err = Open(dir)
	require.NoError(t, err)
	defer a.Close()
	got, err := a.Get(1, kempe.PhasePost)
	require.NoError(t, err)
	assert.True(t, got.Equal(post))
}

func TestResetDropsSnapshots(t *testing.T) {
	a := openMem(t)
	l, err := kempe.NewLattice(3)
	require.NoError(t, err)
	for it := 1; it <= 4; it++ {
		require.NoError(t, a.Record(it, l, l))
	}

	require.NoError(t, a.Reset())
	_, err = a.Latest()
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)

	require.NoError(t, a.Record(1, l, l))
	latest, err := a.Latest()
	require.NoError(t, err)
	assert.Equal(t, 1, latest.Iteration)
}

func TestKeyOrdering(t *testing.T) {
	assert.Less(t, string(snapKey(1, kempe.PhasePost)), string(snapKey(2, kempe.PhasePre)))
	assert.Less(t, string(snapKey(256, kempe.PhasePre)), string(snapKey(256, kempe.PhasePost)))

	it, phase, err := parseKey(snapKey(300, kempe.PhasePre))
	require.NoError(t, err)
	assert.Equal(t, 300, it)
	assert.Equal(t, kempe.PhasePre, phase)

	_, _, err = parseKey([]byte("snap/x"))
	assert.ErrorIs(t, err, ErrBadKey)
}
