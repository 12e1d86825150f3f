package segmenter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vntok/automaton"
	"github.com/katalvlaran/vntok/core"
	"github.com/katalvlaran/vntok/dijkstra"
	"github.com/katalvlaran/vntok/lexicon"
	"github.com/katalvlaran/vntok/segmenter"
)

func newSegmenter(t *testing.T, words []string, opts ...segmenter.Option) *segmenter.Segmenter {
	t.Helper()
	b := automaton.NewBuilder()
	require.NoError(t, b.AddAll(words...))
	s, err := segmenter.New(lexicon.NewDFARecognizerFrom(b.Build()), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestCompoundWeight(t *testing.T) {
	assert.Equal(t, segmenter.MaxEdgeWeight, segmenter.CompoundWeight(1))
	assert.Equal(t, int64(25), segmenter.CompoundWeight(2))
	assert.Equal(t, int64(11), segmenter.CompoundWeight(3))
	assert.Equal(t, int64(1), segmenter.CompoundWeight(11), "never below 1")
}

func TestNormalize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Hòa bình", "hoà bình"},
		{"  xin   chào  ", "xin chào"},
		{"Ánh sáng", "ánh sáng"},
		{"Thùy hỏa", "thuỳ hoả"},
		{"hoàn toàn", "hoàn toàn"},
		{"Đà Nẵng", "đà Nẵng"},
		{"ho\u0300a", "hoà"},
		{"Khỏe mạnh", "khoẻ mạnh"},
		{"việt nam", "việt nam"},
	}
	for _, tc := range cases {
		got, err := segmenter.Normalize(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := segmenter.Normalize(" \t ")
	assert.ErrorIs(t, err, segmenter.ErrEmptyPhrase)
}

func TestConnect_NoEdges(t *testing.T) {
	g := core.NewGraph(3)
	require.NoError(t, segmenter.Connect(g, nil))

	assert.Equal(t, 1, g.CountComponents())
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.True(t, g.HasEdge(2, 3))
	assert.Equal(t, 3, g.EdgeCount())
	for _, e := range g.Edges() {
		assert.Equal(t, segmenter.MaxEdgeWeight, e.Weight)
	}
}

func TestConnect_AlreadyConnected(t *testing.T) {
	g := core.NewGraph(2)
	_, err := g.AddEdge(0, 2, 25, "việt nam")
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, 100, "việt")
	require.NoError(t, err)

	require.NoError(t, segmenter.Connect(g, nil))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestConnect_ExistingEdgeTolerated(t *testing.T) {
	g := core.NewGraph(3)
	_, err := g.AddEdge(0, 1, 100, "a")
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, 25, "c d")
	require.NoError(t, err)

	require.NoError(t, segmenter.Connect(g, nil))
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 3, g.EdgeCount())
}

func TestConnect_SkipsVertexOneAfterZero(t *testing.T) {
	g := core.NewGraph(3)
	_, err := g.AddEdge(1, 3, 25, "sinh học")
	require.NoError(t, err)

	require.NoError(t, segmenter.Connect(g, nil))
	assert.True(t, g.HasEdge(0, 1))
	assert.True(t, g.HasEdge(1, 2))
	assert.Equal(t, 3, g.EdgeCount(), "vertex 1 gets a single incoming edge")
}

func TestConnect_FallbackPathFeasible(t *testing.T) {
	lex := lexicon.NewSetRecognizer([]string{"hoa", "hoc"})
	g := segmenter.BuildLattice([]string{"hoa", "hoc"}, lex)
	require.Zero(t, g.EdgeCount(), "hoa hoc is not a compound")

	require.NoError(t, segmenter.Connect(g, nil))
	assert.Equal(t, 1, g.CountComponents())

	path, cost, err := dijkstra.ShortestPath(g, 0, g.Last())
	require.NoError(t, err)
	assert.Len(t, path, 2)
	assert.Equal(t, 2*segmenter.MaxEdgeWeight, cost)
}

func TestBuildLattice(t *testing.T) {
	lex := lexicon.NewSetRecognizer([]string{"học sinh", "sinh học", "học"})
	g := segmenter.BuildLattice([]string{"học", "sinh", "học"}, lex)

	assert.Equal(t, 3, g.Last())
	var got []string
	for _, e := range g.Edges() {
		got = append(got, e.Word)
		assert.Equal(t, int64(25), e.Weight)
	}
	assert.Equal(t, []string{"học sinh", "sinh học"}, got)

	assert.Zero(t, segmenter.BuildLattice([]string{"a", "b"}, nil).EdgeCount())
}

func TestWeightResolver(t *testing.T) {
	lex := lexicon.NewSetRecognizer([]string{"học sinh", "sinh viên", "học sinh viên"})
	r := segmenter.NewWeightResolver(lex)

	best, err := r.Resolve([][]string{
		{"học", "sinh viên"},
		{"học sinh viên"},
		{"học sinh", "viên"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"học sinh viên"}, best)
	assert.Equal(t, int64(125), r.Cost([]string{"học", "sinh viên"}))

	best, err = r.Resolve([][]string{{"học sinh", "viên"}, {"học", "sinh viên"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"học sinh", "viên"}, best, "ties keep the earlier candidate")

	_, err = r.Resolve(nil)
	assert.ErrorIs(t, err, segmenter.ErrNoCandidates)
}

func TestSegment(t *testing.T) {
	s := newSegmenter(t, []string{"hoa", "hoc"})
	words, ok := s.Segment("Hoa Hoc")
	require.True(t, ok)
	assert.Equal(t, []string{"hoa", "hoc"}, words)

	_, ok = s.Segment("xyz abc")
	assert.False(t, ok)
}

func TestTokenize_Agreement(t *testing.T) {
	s := newSegmenter(t, []string{"học sinh", "học", "sinh"})
	words, err := s.Tokenize("Học sinh học sinh")
	require.NoError(t, err)
	assert.Equal(t, []string{"học sinh", "học sinh"}, words)
	assert.Len(t, s.Result(), 1)
}

func TestTokenize_Ambiguous(t *testing.T) {
	s := newSegmenter(t, []string{"học sinh", "sinh học", "học", "sinh"})
	words, err := s.Tokenize("học sinh học")
	require.NoError(t, err)
	assert.Equal(t, []string{"học sinh", "học"}, words)
	assert.Equal(t, [][]string{{"học sinh", "học"}, {"học", "sinh học"}}, s.Result())
}

// lastResolver always picks the last candidate.
type lastResolver struct{}

func (lastResolver) Resolve(c [][]string) ([]string, error) { return c[len(c)-1], nil }

func TestTokenize_CustomResolver(t *testing.T) {
	s := newSegmenter(t, []string{"học sinh", "sinh học", "học", "sinh"}, segmenter.WithResolver(lastResolver{}))
	words, err := s.Tokenize("học sinh học")
	require.NoError(t, err)
	assert.Equal(t, []string{"học", "sinh học"}, words)
}

func TestTokenize_LatticeOnly(t *testing.T) {
	// The longest match fails on "ẩm"; the lattice still finds a reading.
	s := newSegmenter(t, []string{"tốc độ", "độ ẩm cao"})
	words, err := s.Tokenize("tốc độ ẩm cao")
	require.NoError(t, err)
	assert.Equal(t, []string{"tốc", "độ ẩm cao"}, words)
	assert.Len(t, s.Result(), 1)
}

func TestTokenize_AllFallbackReading(t *testing.T) {
	// Nothing is known: the only reading is one word per syllable, whose
	// cost equals the search cap.
	s := newSegmenter(t, []string{"nam"})
	words, err := s.Tokenize("xin chào bạn")
	require.NoError(t, err)
	assert.Equal(t, []string{"xin", "chào", "bạn"}, words)
}

func TestTokenize_UserLexicon(t *testing.T) {
	user := lexicon.NewSetRecognizer([]string{"máy tính"})
	s := newSegmenter(t, []string{"máy", "tính"}, segmenter.WithUserLexicon(user))
	words, err := s.Tokenize("máy tính")
	require.NoError(t, err)
	assert.Equal(t, []string{"máy tính"}, words)

	require.NoError(t, s.Close())
	assert.False(t, user.Accept("máy tính"), "Close closes user lexicons")
}

func TestTokenize_Errors(t *testing.T) {
	s := newSegmenter(t, []string{"nam"})
	_, err := s.Tokenize("   ")
	assert.ErrorIs(t, err, segmenter.ErrEmptyPhrase)

	_, err = segmenter.New(nil)
	assert.ErrorIs(t, err, segmenter.ErrNilRecognizer)
}
