// Package archive keeps per-iteration lattice snapshots in a badger store so
// a finished run can be audited or replayed.
package archive

import (
	"bytes"
	"encoding/binary"

	"honeycomb/internal/sims/kempe"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

var (
	snapPrefix = []byte("snap/")

	// ErrBadKey is returned when the store holds a key this package did not write.
	ErrBadKey = errors.New("archive: malformed snapshot key")
)

// Snapshot is one stored lattice.
type Snapshot struct {
	Iteration int
	Phase     kempe.Phase
	Lattice   *kempe.Lattice
}

// Archive is a badger-backed kempe.SnapshotRecorder.
type Archive struct {
	db *badger.DB
}

// Open opens or creates the archive in dir. An empty dir keeps everything in
// memory.
func Open(dir string) (*Archive, error) {
	opts := badger.DefaultOptions(dir)
	opts.DetectConflicts = false
	opts.Logger = nil
	opts.MetricsEnabled = false
	if len(dir) == 0 {
		opts.InMemory = true
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrapf(err, "opening archive %q", dir)
	}
	return &Archive{db: db}, nil
}

// Close flushes and releases the store.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	err := a.db.Close()
	a.db = nil
	return err
}

func phaseByte(p kempe.Phase) byte {
	if p == kempe.PhasePre {
		return 0
	}
	return 1
}

func snapKey(iteration int, p kempe.Phase) []byte {
	key := make([]byte, 0, len(snapPrefix)+9)
	key = append(key, snapPrefix...)
	key = binary.BigEndian.AppendUint64(key, uint64(iteration))
	return append(key, phaseByte(p))
}

func parseKey(key []byte) (int, kempe.Phase, error) {
	body := bytes.TrimPrefix(key, snapPrefix)
	if len(body) != 9 {
		return 0, "", errors.Wrapf(ErrBadKey, "%q", key)
	}
	phase := kempe.PhasePost
	if body[8] == 0 {
		phase = kempe.PhasePre
	}
	return int(binary.BigEndian.Uint64(body)), phase, nil
}

// Reset deletes every stored snapshot so a new run starts from an empty
// archive.
func (a *Archive) Reset() error {
	var keys [][]byte
	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Prefix: snapPrefix})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "listing snapshots")
	}

	wb := a.db.NewWriteBatch()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			wb.Cancel()
			return errors.Wrap(err, "clearing archive")
		}
	}
	if err := wb.Flush(); err != nil {
		return errors.Wrap(err, "clearing archive")
	}
	return nil
}

// Record stores the pre and post lattice of one iteration in a single
// transaction.
func (a *Archive) Record(iteration int, pre, post *kempe.Lattice) error {
	return a.db.Update(func(txn *badger.Txn) error {
		for _, s := range []Snapshot{{iteration, kempe.PhasePre, pre}, {iteration, kempe.PhasePost, post}} {
			buf, err := s.Lattice.MarshalBinary()
			if err != nil {
				return err
			}
			if err := txn.Set(snapKey(s.Iteration, s.Phase), buf); err != nil {
				return errors.Wrapf(err, "storing iteration %d %s", s.Iteration, s.Phase)
			}
		}
		return nil
	})
}

// Get loads a single snapshot.
func (a *Archive) Get(iteration int, p kempe.Phase) (*kempe.Lattice, error) {
	l := &kempe.Lattice{}
	err := a.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapKey(iteration, p))
		if err != nil {
			return err
		}
		return item.Value(l.UnmarshalBinary)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "iteration %d %s", iteration, p)
	}
	return l, nil
}

// Each visits every snapshot in iteration order, pre before post. Returning
// an error from fn stops the walk.
func (a *Archive) Each(fn func(Snapshot) error) error {
	return a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: true,
			PrefetchSize:   64,
			Prefix:         snapPrefix,
		})
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			iteration, phase, err := parseKey(item.Key())
			if err != nil {
				return err
			}
			l := &kempe.Lattice{}
			if err := item.Value(l.UnmarshalBinary); err != nil {
				return errors.Wrapf(err, "iteration %d %s", iteration, phase)
			}
			if err := fn(Snapshot{Iteration: iteration, Phase: phase, Lattice: l}); err != nil {
				return err
			}
		}
		return nil
	})
}

// Latest returns the post-move lattice of the highest stored iteration.
func (a *Archive) Latest() (Snapshot, error) {
	var out Snapshot
	err := a.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Reverse: true, Prefix: snapPrefix})
		defer it.Close()

		seek := append(append([]byte(nil), snapPrefix...), bytes.Repeat([]byte{0xFF}, 9)...)
		it.Seek(seek)
		if !it.Valid() {
			return badger.ErrKeyNotFound
		}
		item := it.Item()
		iteration, phase, err := parseKey(item.Key())
		if err != nil {
			return err
		}
		l := &kempe.Lattice{}
		if err := item.Value(l.UnmarshalBinary); err != nil {
			return err
		}
		out = Snapshot{Iteration: iteration, Phase: phase, Lattice: l}
		return nil
	})
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "latest snapshot")
	}
	return out, nil
}
