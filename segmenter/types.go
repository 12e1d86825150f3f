// Package segmenter splits a Vietnamese phrase, a chain of syllables
// separated by spaces, into words.
//
// Segmentation runs in stages:
//
//  1. Normalize: collapse whitespace, lowercase the first letter and move
//     tone marks to their modern place ("hòa" becomes "hoà").
//  2. Segment: longest-match cut by the lexicon recognizer.
//  3. Lattice: a graph over the syllable gaps 0..N with one edge per known
//     compound, repaired by Connect so that a path from 0 to N exists, and
//     solved with Dijkstra.
//  4. ResolveAmbiguity: when the candidates disagree, the Resolver picks one.
//
// Tokenize runs all stages. A Segmenter keeps the candidates of the last
// call (Result) and is not safe for concurrent use.
//
// Errors:
//
//	ErrEmptyPhrase   - the phrase has no syllables.
//	ErrNilRecognizer - New was given a nil recognizer.
//	ErrRepairFailed  - Connect could not make the lattice connected (warning).
//	ErrUnreachable   - the last lattice vertex cannot be reached from 0.
//	ErrNoCandidates  - no segmentation could be produced.
package segmenter

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for segmentation.
var (
	// ErrEmptyPhrase indicates a phrase that is empty or only whitespace.
	ErrEmptyPhrase = errors.New("segmenter: empty phrase")

	// ErrNilRecognizer indicates that New was called without a recognizer.
	ErrNilRecognizer = errors.New("segmenter: recognizer is nil")

	// ErrRepairFailed indicates a lattice that is still disconnected after
	// Connect. It is logged as a warning; callers may go on.
	ErrRepairFailed = errors.New("segmenter: lattice still disconnected after repair")

	// ErrUnreachable indicates that no lattice path leads from 0 to N.
	ErrUnreachable = errors.New("segmenter: last vertex unreachable")

	// ErrNoCandidates indicates that there is nothing to choose from.
	ErrNoCandidates = errors.New("segmenter: no candidate segmentation")
)

// MaxEdgeWeight is the weight of a single unknown syllable in the lattice.
const MaxEdgeWeight int64 = 100

// CompoundWeight returns the lattice weight of a known word of k syllables:
// MaxEdgeWeight / k², at least 1. Longer known words are cheaper.
func CompoundWeight(k int) int64 {
	if k <= 1 {
		return MaxEdgeWeight
	}
	w := MaxEdgeWeight / int64(k*k)
	if w < 1 {
		return 1
	}

	return w
}

// Lexicon answers dictionary queries. lexicon.DFARecognizer and
// lexicon.SetRecognizer implement it.
type Lexicon interface {
	Contains(word string) bool
	HasPrefix(prefix string) bool
}

// Normalizer rewrites a phrase into canonical spelling.
type Normalizer interface {
	Normalize(phrase string) string
}

// Resolver picks one segmentation out of several candidates.
type Resolver interface {
	Resolve(candidates [][]string) ([]string, error)
}

// Option configures a Segmenter.
type Option func(*Segmenter)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Segmenter) {
		if l != nil {
			s.log = l
		}
	}
}

// WithNormalizer replaces the default AccentNormalizer.
func WithNormalizer(n Normalizer) Option {
	return func(s *Segmenter) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithResolver replaces the default WeightResolver.
func WithResolver(r Resolver) Option {
	return func(s *Segmenter) {
		if r != nil {
			s.resolver = r
		}
	}
}

// WithUserLexicon adds a lexicon consulted for lattice compounds and weights
// next to the recognizer's own. If l implements io.Closer, Close closes it.
func WithUserLexicon(l Lexicon) Option {
	return func(s *Segmenter) {
		if l != nil {
			s.user = append(s.user, l)
		}
	}
}
