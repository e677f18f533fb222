package kempe

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultOutput is where a finished run stores its lattice.
const DefaultOutput = "DATA/mat.dat"

// WriteTo writes one line per site in row-major order, "%d %d %d\n".
func (l *Lattice) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for i := 0; i < l.size; i++ {
		for j := 0; j < l.size; j++ {
			c := l.Site(i, j)
			n, err := fmt.Fprintf(bw, "%d %d %d\n", c[0], c[1], c[2])
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, bw.Flush()
}

// ReadLattice parses the WriteTo format. The size is inferred from the number
// of site lines, which must be a perfect square.
func ReadLattice(r io.Reader) (*Lattice, error) {
	var sites [][VerticesPerSite]Colour
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != VerticesPerSite {
			return nil, errors.Wrapf(ErrMalformedLattice, "line %d: want %d colours, got %q", line, VerticesPerSite, text)
		}
		var site [VerticesPerSite]Colour
		for a, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v >= NumColours {
				return nil, errors.Wrapf(ErrMalformedLattice, "line %d: bad colour %q", line, f)
			}
			site[a] = Colour(v)
		}
		sites = append(sites, site)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "reading lattice")
	}

	size := 0
	for size*size < len(sites) {
		size++
	}
	if size*size != len(sites) {
		return nil, errors.Wrapf(ErrMalformedLattice, "%d sites is not a square lattice", len(sites))
	}
	l, err := NewLattice(size)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedLattice, "%d sites: %v", len(sites), err)
	}
	for n, site := range sites {
		l.SetSite(n/size, n%size, site)
	}
	return l, nil
}

// SaveLattice writes l to path, creating parent directories.
func SaveLattice(path string, l *Lattice) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating lattice file")
	}
	if _, err := l.WriteTo(f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}

// LoadLattice reads a lattice stored by SaveLattice.
func LoadLattice(path string) (*Lattice, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening lattice file")
	}
	defer f.Close()
	l, err := ReadLattice(f)
	if err != nil {
		return nil, errors.Wrapf(err, "lattice file %s", path)
	}
	return l, nil
}

// MarshalBinary encodes the lattice as a big-endian uint16 size followed by
// one byte per vertex.
func (l *Lattice) MarshalBinary() ([]byte, error) {
	cells := l.Cells()
	out := make([]byte, 2, 2+len(cells))
	binary.BigEndian.PutUint16(out, uint16(l.size))
	return append(out, cells...), nil
}

// UnmarshalBinary decodes the MarshalBinary form into l.
func (l *Lattice) UnmarshalBinary(data []byte) error {
	if len(data) < 2 {
		return errors.Wrap(ErrMalformedLattice, "short snapshot")
	}
	size := int(binary.BigEndian.Uint16(data))
	body := data[2:]
	if len(body) != size*size*VerticesPerSite {
		return errors.Wrapf(ErrMalformedLattice, "size %d with %d cells", size, len(body))
	}
	fresh, err := NewLattice(size)
	if err != nil {
		return errors.Wrap(err, "snapshot header")
	}
	for n, c := range body {
		if c >= NumColours {
			return errors.Wrapf(ErrMalformedLattice, "cell %d holds colour %d", n, c)
		}
	}
	copy(fresh.Cells(), body)
	*l = *fresh
	return nil
}
