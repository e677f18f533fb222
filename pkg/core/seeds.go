package core

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSeedFile is where runs look for seed records unless told otherwise.
const DefaultSeedFile = "DATA/rand_seed50k.dat"

// Errors
var (
	ErrSeedFileExhausted   = errors.New("seed file has fewer records than requested")
	ErrMalformedSeedRecord = errors.New("malformed seed record")
	ErrBadRecordIndex      = errors.New("seed record index must be >= 1")
)

// SeedPair is one record of a seed file.
type SeedPair struct {
	Seed1 int64
	Seed2 int64
}

func (p SeedPair) String() string {
	return fmt.Sprintf("%d %d", p.Seed1, p.Seed2)
}

// ReadSeeds reads the first count records of a seed stream. Blank lines are
// skipped; every other line must hold exactly two integers.
func ReadSeeds(r io.Reader, count int) ([]SeedPair, error) {
	if count < 1 {
		return nil, errors.Wrapf(ErrBadRecordIndex, "requested %d records", count)
	}
	seeds := make([]SeedPair, 0, count)
	sc := bufio.NewScanner(r)
	line := 0
	for len(seeds) < count && sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, errors.Wrapf(ErrMalformedSeedRecord, "line %d: %q", line, text)
		}
		s1, err1 := strconv.ParseInt(fields[0], 10, 64)
		s2, err2 := strconv.ParseInt(fields[1], 10, 64)
		if err1 != nil || err2 != nil {
			return nil, errors.Wrapf(ErrMalformedSeedRecord, "line %d: %q", line, text)
		}
		seeds = append(seeds, SeedPair{Seed1: s1, Seed2: s2})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading seed stream")
	}
	if len(seeds) < count {
		return nil, errors.Wrapf(ErrSeedFileExhausted, "wanted %d, found %d", count, len(seeds))
	}
	return seeds, nil
}

// SeedRecord returns the record at the 1-based index from r.
func SeedRecord(r io.Reader, record int) (SeedPair, error) {
	if record < 1 {
		return SeedPair{}, errors.Wrapf(ErrBadRecordIndex, "record %d", record)
	}
	seeds, err := ReadSeeds(r, record)
	if err != nil {
		return SeedPair{}, err
	}
	return seeds[record-1], nil
}

// LoadSeedRecord opens path and returns its record at the 1-based index.
func LoadSeedRecord(path string, record int) (SeedPair, error) {
	f, err := os.Open(path)
	if err != nil {
		return SeedPair{}, errors.Wrap(err, "opening seed file")
	}
	defer f.Close()
	p, err := SeedRecord(f, record)
	if err != nil {
		return SeedPair{}, errors.Wrapf(err, "seed file %s", path)
	}
	return p, nil
}

// LoadSeedRange opens path and returns records first..last inclusive (1-based).
func LoadSeedRange(path string, first, last int) ([]SeedPair, error) {
	if first < 1 || last < first {
		return nil, errors.Wrapf(ErrBadRecordIndex, "range %d-%d", first, last)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening seed file")
	}
	defer f.Close()
	seeds, err := ReadSeeds(f, last)
	if err != nil {
		return nil, errors.Wrapf(err, "seed file %s", path)
	}
	return seeds[first-1:], nil
}
