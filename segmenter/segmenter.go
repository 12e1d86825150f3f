package segmenter

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vntok/bfs"
	"github.com/katalvlaran/vntok/core"
	"github.com/katalvlaran/vntok/dijkstra"
	"github.com/katalvlaran/vntok/lexicon"
)

// Segmenter splits phrases into words with a lexicon recognizer.
type Segmenter struct {
	rec        lexicon.Recognizer
	lexicons   multiLexicon // rec, when it is a Lexicon, then user
	user       []Lexicon
	normalizer Normalizer
	resolver   Resolver
	log        logrus.FieldLogger

	result [][]string
}

// New returns a Segmenter over rec. If rec also implements Lexicon it is
// used for lattice compounds, ahead of any WithUserLexicon lexicons.
// The Segmenter owns rec: Close closes it.
func New(rec lexicon.Recognizer, opts ...Option) (*Segmenter, error) {
	if rec == nil {
		return nil, ErrNilRecognizer
	}
	s := &Segmenter{
		rec:        rec,
		normalizer: defaultNormalizer,
		log:        logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if lex, ok := rec.(Lexicon); ok {
		s.lexicons = append(s.lexicons, lex)
	}
	s.lexicons = append(s.lexicons, s.user...)
	if s.resolver == nil {
		s.resolver = NewWeightResolver(s.lexicons)
	}

	return s, nil
}

// Normalize collapses whitespace, lowercases the first letter when it is
// uppercase, and applies the Normalizer. It returns ErrEmptyPhrase for a
// phrase without syllables.
func (s *Segmenter) Normalize(phrase string) (string, error) {
	return normalize(phrase, s.normalizer)
}

// Segment lowercases phrase and cuts it with the recognizer.
// It returns a copy of the word list, or false when the phrase is rejected.
func (s *Segmenter) Segment(phrase string) ([]string, bool) {
	if !s.rec.Accept(strings.ToLower(phrase)) {
		return nil, false
	}

	return append([]string(nil), s.rec.WordList()...), true
}

// Connect repairs g in place; see the package function Connect.
func (s *Segmenter) Connect(g *core.Graph) error {
	return Connect(g, s.log)
}

// BuildLattice builds the compound lattice of syllables against the
// Segmenter's lexicons.
func (s *Segmenter) BuildLattice(syllables []string) *core.Graph {
	return BuildLattice(syllables, s.lexicons)
}

// ResolveAmbiguity returns the most probable of several segmentations.
func (s *Segmenter) ResolveAmbiguity(candidates [][]string) ([]string, error) {
	return s.resolver.Resolve(candidates)
}

// Result returns the distinct candidates found by the last Tokenize,
// longest match first.
func (s *Segmenter) Result() [][]string {
	out := make([][]string, len(s.result))
	for i, r := range s.result {
		out[i] = append([]string(nil), r...)
	}

	return out
}

// Tokenize normalizes phrase and returns its most probable segmentation.
//
// The candidates are the longest-match cut of the recognizer and the
// cheapest path of the repaired compound lattice. When they differ the
// Resolver decides. Tokenize fails only if the phrase is empty or both
// candidates fail.
func (s *Segmenter) Tokenize(phrase string) ([]string, error) {
	s.result = s.result[:0]

	p, err := s.Normalize(phrase)
	if err != nil {
		return nil, err
	}
	log := s.log.WithField("phrase", p)

	if words, ok := s.Segment(p); ok {
		s.add(words)
	} else {
		log.Debug("segmenter: longest match rejected the phrase")
	}

	syllables := strings.Fields(strings.ToLower(p))
	if words, err := s.latticePath(syllables); err != nil {
		log.WithError(err).Debug("segmenter: no lattice path")
	} else {
		s.add(words)
	}

	switch len(s.result) {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNoCandidates, p)
	case 1:
		return append([]string(nil), s.result[0]...), nil
	}
	best, err := s.ResolveAmbiguity(s.Result())
	if err != nil {
		return nil, err
	}
	log.WithField("candidates", len(s.result)).Debug("segmenter: ambiguity resolved")

	return best, nil
}

// latticePath returns the words along the cheapest path of the repaired
// lattice of syllables.
func (s *Segmenter) latticePath(syllables []string) ([]string, error) {
	g := s.BuildLattice(syllables)
	if err := s.Connect(g); err != nil && !errors.Is(err, ErrRepairFailed) {
		return nil, err
	}

	reach, err := bfs.BFS(g, 0)
	if err != nil {
		return nil, err
	}
	if !reach.Reached(g.Last()) {
		return nil, ErrUnreachable
	}
	// Every edge costs at most MaxEdgeWeight per syllable it spans, so no
	// path is dearer than the all-fallback reading.
	limit := dijkstra.WithMaxDistance(MaxEdgeWeight * int64(len(syllables)))
	path, _, err := dijkstra.ShortestPath(g, 0, g.Last(), limit)
	if err != nil {
		return nil, err
	}

	words := make([]string, len(path))
	for i, e := range path {
		words[i] = e.Word
		if words[i] == "" {
			words[i] = strings.Join(syllables[e.From:e.To], " ")
		}
	}

	return words, nil
}

// add records words unless an equal candidate is already recorded.
func (s *Segmenter) add(words []string) {
	for _, r := range s.result {
		if slices.Equal(r, words) {
			return
		}
	}
	s.result = append(s.result, words)
}

// Close clears the last result and closes the recognizer and every user
// lexicon that implements io.Closer.
func (s *Segmenter) Close() error {
	s.result = nil
	errs := []error{s.rec.Close()}
	for _, l := range s.user {
		if c, ok := l.(io.Closer); ok {
			errs = append(errs, c.Close())
		}
	}

	return errors.Join(errs...)
}
