package automaton

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/edsrzf/mmap-go"
)

// WriteTo serializes the automaton in the binary format read by Load.
//
// Layout: Header, then the state table, then the edge table, all
// little-endian and without padding.
func (a *Automaton) WriteTo(w io.Writer) (int64, error) {
	if a.closed {
		return 0, ErrClosed
	}
	h := Header{
		Magic:        magic,
		Version:      formatVersion,
		StatesOffset: headerSize,
		StatesCount:  int64(len(a.states)),
		EdgesOffset:  headerSize + int64(len(a.states))*flatStateSize,
		EdgesCount:   int64(len(a.edges)),
	}
	cw := &countingWriter{w: bufio.NewWriter(w)}
	for _, v := range []any{h, a.states, a.edges} {
		if err := binary.Write(cw, binary.LittleEndian, v); err != nil {
			return cw.n, fmt.Errorf("automaton: write: %w", err)
		}
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("automaton: write: %w", err)
	}

	return cw.n, nil
}

// Save writes the automaton to a new file at path.
func (a *Automaton) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("automaton: create %s: %w", path, err)
	}
	if _, err = a.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Load maps the serialized automaton at path into memory.
//
// The tables are not copied onto the Go heap: on little-endian hosts they
// point straight into the read-only mapping, and the OS pages them in on
// demand. The returned Automaton must be closed to release the mapping.
func Load(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("automaton: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("automaton: mmap %s: %w", path, err)
	}
	h, err := readHeader(m)
	if err != nil {
		_ = m.Unmap()
		return nil, err
	}
	if !littleEndianHost() {
		// The zero-copy view below relies on the host byte order matching the file.
		a, err := decode(m, h)
		_ = m.Unmap()
		return a, err
	}

	a := &Automaton{
		states:  bytesToSlice[FlatState](m[h.StatesOffset:], int(h.StatesCount)),
		edges:   bytesToSlice[FlatEdge](m[h.EdgesOffset:], int(h.EdgesCount)),
		mapping: m,
	}
	if err = a.validate(); err != nil {
		_ = m.Unmap()
		return nil, err
	}

	return a, nil
}

// FromBytes decodes a serialized automaton held in memory.
// The tables are copied, so b may be reused afterwards.
func FromBytes(b []byte) (*Automaton, error) {
	h, err := readHeader(b)
	if err != nil {
		return nil, err
	}

	return decode(b, h)
}

// readHeader parses and bounds-checks the header of b.
func readHeader(b []byte) (Header, error) {
	var h Header
	if len(b) < headerSize {
		return h, ErrTruncated
	}
	if err := binary.Read(bytes.NewReader(b[:headerSize]), binary.LittleEndian, &h); err != nil {
		return h, fmt.Errorf("automaton: read header: %w", err)
	}
	if h.Magic != magic {
		return h, ErrBadMagic
	}
	if h.Version != formatVersion {
		return h, fmt.Errorf("%w: %d", ErrUnsupportedVersion, h.Version)
	}
	if h.StatesCount < 1 || h.EdgesCount < 0 || h.StatesOffset < headerSize || h.EdgesOffset < headerSize {
		return h, fmt.Errorf("%w: bad header counts", ErrCorrupt)
	}
	size := int64(len(b))
	if h.StatesOffset > size || h.EdgesOffset > size {
		return h, ErrTruncated
	}
	// Compare counts against the room left so the products cannot overflow.
	if h.StatesCount > (size-h.StatesOffset)/flatStateSize || h.EdgesCount > (size-h.EdgesOffset)/flatEdgeSize {
		return h, ErrTruncated
	}

	return h, nil
}

// decode copies the tables out of b.
func decode(b []byte, h Header) (*Automaton, error) {
	a := &Automaton{
		states: make([]FlatState, h.StatesCount),
		edges:  make([]FlatEdge, h.EdgesCount),
	}
	if err := binary.Read(bytes.NewReader(b[h.StatesOffset:]), binary.LittleEndian, a.states); err != nil {
		return nil, fmt.Errorf("automaton: read states: %w", err)
	}
	if err := binary.Read(bytes.NewReader(b[h.EdgesOffset:]), binary.LittleEndian, a.edges); err != nil {
		return nil, fmt.Errorf("automaton: read edges: %w", err)
	}
	if err := a.validate(); err != nil {
		return nil, err
	}

	return a, nil
}

// validate checks that every index stays inside its table, so that
// queries never panic on a damaged file.
func (a *Automaton) validate() error {
	ne := uint64(len(a.edges))
	ns := uint32(len(a.states))
	for i, st := range a.states {
		if uint64(st.EdgesIdx)+uint64(st.EdgesLen) > ne {
			return fmt.Errorf("%w: state %d edges [%d,+%d) of %d", ErrCorrupt, i, st.EdgesIdx, st.EdgesLen, ne)
		}
	}
	for i, e := range a.edges {
		if e.Target >= ns {
			return fmt.Errorf("%w: edge %d targets state %d of %d", ErrCorrupt, i, e.Target, ns)
		}
	}

	return nil
}

// bytesToSlice reinterprets the first n records of b as a []T without copying.
func bytesToSlice[T any](b []byte, n int) []T {
	if n == 0 || len(b) == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// littleEndianHost reports whether the host stores integers little-endian.
func littleEndianHost() bool {
	x := uint16(1)

	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// countingWriter tracks the number of bytes written for WriteTo.
type countingWriter struct {
	w *bufio.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}
