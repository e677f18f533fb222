package kempe

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteToFormat(t *testing.T) {
	l, err := NewLattice(2)
	require.NoError(t, err)
	l.SetSite(1, 0, [3]Colour{2, 0, 1})

	var buf bytes.Buffer
	n, err := l.WriteTo(&buf)
	require.NoError(t, err)
	want := "0 1 2\n0 1 2\n2 0 1\n0 1 2\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, int64(len(want)), n)
}

func TestReadLatticeRoundTrip(t *testing.T) {
	start := scrambled(t, 5, 3, 30)

	var buf bytes.Buffer
	_, err := start.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadLattice(&buf)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Size())
	assert.True(t, start.Equal(got))
}

func TestReadLatticeRejectsMalformedInput(t *testing.T) {
	cases := map[string]string{
		"not square":  strings.Repeat("0 1 2\n", 5),
		"single site": "0 1 2\n",
		"bad colour":  "0 1 3\n0 1 2\n0 1 2\n0 1 2\n",
		"short line":  "0 1\n0 1 2\n0 1 2\n0 1 2\n",
		"word":        "0 one 2\n0 1 2\n0 1 2\n0 1 2\n",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadLattice(strings.NewReader(in))
			assert.ErrorIs(t, err, ErrMalformedLattice)
		})
	}
}

func TestSaveAndLoadLattice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "DATA", "mat.dat")
	start := scrambled(t, 3, 8, 12)

	require.NoError(t, SaveLattice(path, start))
	got, err := LoadLattice(path)
	require.NoError(t, err)
	assert.True(t, start.Equal(got))

	_, err = LoadLattice(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}

func TestBinarySnapshot(t *testing.T) {
	start := scrambled(t, 4, 2, 9)
	data, err := start.MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, data, 2+4*4*3)

	var got Lattice
	require.NoError(t, got.UnmarshalBinary(data))
	assert.True(t, start.Equal(&got))

	assert.ErrorIs(t, got.UnmarshalBinary(data[:1]), ErrMalformedLattice)
	assert.ErrorIs(t, got.UnmarshalBinary(data[:10]), ErrMalformedLattice)
}

func TestInitialLatticePersistsAsNineTrivialLines(t *testing.T) {
	l, err := NewLattice(DefaultSize)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = l.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("0 1 2\n", 9), buf.String())
}

func TestBinarySnapshotRejectsBadContent(t *testing.T) {
	var got Lattice

	tiny := []byte{0x00, 0x01, 0, 1, 2}
	assert.ErrorIs(t, got.UnmarshalBinary(tiny), ErrBadSize)

	l, err := NewLattice(2)
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)
	data[len(data)-1] = 3
	assert.ErrorIs(t, got.UnmarshalBinary(data), ErrMalformedLattice)
}

func TestBinarySnapshotWideHeader(t *testing.T) {
	l, err := NewLattice(300)
	require.NoError(t, err)
	data, err := l.MarshalBinary()
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x2c}, data[:2])

	var got Lattice
	require.NoError(t, got.UnmarshalBinary(data))
	assert.Equal(t, 300, got.Size())
	assert.True(t, l.Equal(&got))
}
