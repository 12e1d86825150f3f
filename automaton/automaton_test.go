package automaton_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vntok/automaton"
)

// buildLexicon compiles a small Vietnamese lexicon used across tests.
func buildLexicon(t *testing.T) *automaton.Automaton {
	t.Helper()
	b := automaton.NewBuilder()
	require.NoError(t, b.AddAll("việt", "nam", "việt nam", "học", "học sinh", "sinh"))

	return b.Build()
}

func TestBuilder_RejectsEmptyAndInvalid(t *testing.T) {
	b := automaton.NewBuilder()
	assert.ErrorIs(t, b.Add(""), automaton.ErrEmptyWord)
	assert.Error(t, b.Add(string([]byte{0xff, 0xfe})))
	assert.Equal(t, 0, b.Len())
}

func TestBuilder_IgnoresDuplicates(t *testing.T) {
	b := automaton.NewBuilder()
	require.NoError(t, b.AddAll("nam", "nam", "năm"))
	assert.Equal(t, 2, b.Len())
}

func TestAutomaton_NextAndFinal(t *testing.T) {
	a := buildLexicon(t)

	s, ok := a.Walk("việt")
	require.True(t, ok)
	assert.True(t, a.IsFinal(s), "việt is a word")

	// "việt" continues with a space into "việt nam".
	next, ok := a.Next(s, ' ')
	require.True(t, ok)
	assert.False(t, a.IsFinal(next))

	_, ok = a.Next(s, 'x')
	assert.False(t, ok)
}

func TestAutomaton_OutTransitionsSorted(t *testing.T) {
	a := buildLexicon(t)
	out := a.OutTransitions(a.Initial())
	assert.Equal(t, []rune{'h', 'n', 's', 'v'}, out)
}

func TestAutomaton_AcceptsAndHasPrefix(t *testing.T) {
	a := buildLexicon(t)

	assert.True(t, a.Accepts("việt nam"))
	assert.True(t, a.Accepts("học sinh"))
	assert.False(t, a.Accepts("việt n"))
	assert.False(t, a.Accepts(""))
	assert.True(t, a.HasPrefix("việt n"))
	assert.False(t, a.HasPrefix("viet"))
}

func TestAutomaton_RoundTripBytes(t *testing.T) {
	a := buildLexicon(t)

	var buf bytes.Buffer
	n, err := a.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	b, err := automaton.FromBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, a.StateCount(), b.StateCount())
	assert.Equal(t, a.EdgeCount(), b.EdgeCount())
	for _, w := range []string{"việt", "nam", "việt nam", "học sinh"} {
		assert.True(t, b.Accepts(w), w)
	}
	assert.False(t, b.Accepts("việt n"))
}

func TestLoad_MappedFile(t *testing.T) {
	a := buildLexicon(t)
	path := filepath.Join(t.TempDir(), "lexicon.dfa")
	require.NoError(t, a.Save(path))

	m, err := automaton.Load(path)
	require.NoError(t, err)
	assert.True(t, m.Accepts("việt nam"))
	assert.Equal(t, a.OutTransitions(a.Initial()), m.OutTransitions(m.Initial()))

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
	assert.False(t, m.Accepts("việt nam"), "queries after Close see an empty automaton")
	assert.NoError(t, m.Close(), "Close is idempotent")
}

func TestLoad_Faults(t *testing.T) {
	dir := t.TempDir()

	_, err := automaton.Load(filepath.Join(dir, "missing.dfa"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.dfa")
	require.NoError(t, os.WriteFile(bad, bytes.Repeat([]byte{'x'}, 64), 0o644))
	_, err = automaton.Load(bad)
	assert.ErrorIs(t, err, automaton.ErrBadMagic)

	var buf bytes.Buffer
	_, err = buildLexicon(t).WriteTo(&buf)
	require.NoError(t, err)
	short := filepath.Join(dir, "short.dfa")
	require.NoError(t, os.WriteFile(short, buf.Bytes()[:buf.Len()-4], 0o644))
	_, err = automaton.Load(short)
	assert.ErrorIs(t, err, automaton.ErrTruncated)
}

func TestLoad_OverflowingCounts(t *testing.T) {
	var buf bytes.Buffer
	_, err := buildLexicon(t).WriteTo(&buf)
	require.NoError(t, err)

	// Header layout: magic(4) version(4) statesOffset(8) statesCount(8)
	// edgesOffset(8) edgesCount(8).
	for name, at := range map[string]int{"states": 16, "edges": 32} {
		raw := bytes.Clone(buf.Bytes())
		binary.LittleEndian.PutUint64(raw[at:at+8], 1<<62)

		_, err = automaton.FromBytes(raw)
		assert.ErrorIs(t, err, automaton.ErrTruncated, name)

		path := filepath.Join(t.TempDir(), name+".dfa")
		require.NoError(t, os.WriteFile(path, raw, 0o644))
		_, err = automaton.Load(path)
		assert.ErrorIs(t, err, automaton.ErrTruncated, name)
	}
}

func TestFromBytes_CorruptTarget(t *testing.T) {
	var buf bytes.Buffer
	_, err := buildLexicon(t).WriteTo(&buf)
	require.NoError(t, err)

	raw := buf.Bytes()
	// The last four bytes are the Target of the last edge; point it far away.
	copy(raw[len(raw)-4:], []byte{0xff, 0xff, 0xff, 0x7f})
	_, err = automaton.FromBytes(raw)
	assert.ErrorIs(t, err, automaton.ErrCorrupt)

	_, err = automaton.FromBytes(raw[:10])
	assert.ErrorIs(t, err, automaton.ErrTruncated)
}

func TestWriteTo_AfterClose(t *testing.T) {
	a := buildLexicon(t)
	require.NoError(t, a.Close())
	_, err := a.WriteTo(&bytes.Buffer{})
	assert.ErrorIs(t, err, automaton.ErrClosed)
}
