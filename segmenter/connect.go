package segmenter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/vntok/core"
)

// Connect links a disconnected lattice with fallback edges of weight
// MaxEdgeWeight so that every vertex is reachable from vertex 0.
//
// A vertex is isolated when no edge enters it; vertex 0 always is. For
// every isolated vertex u, in ascending order:
//
//   - u == 0: add 0→1, whatever the out-degree of 0;
//   - u == 1: add 0→1 only if vertex 0 was not handled above;
//   - u > 1:  add u-1→u.
//
// An edge that already exists is left as is. If the lattice is still not a
// single component afterwards, a warning is logged and ErrRepairFailed is
// returned; the lattice keeps the edges added so far.
//
// A nil log uses the logrus standard logger.
//
// Complexity: O(V + E).
func Connect(g *core.Graph, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}
	if g.CountComponents() == 1 {
		return nil
	}

	zeroVertex := false
	for _, u := range g.IsolatedVertices() {
		var err error
		switch {
		case u == 0:
			zeroVertex = true
			_, err = g.AddEdge(0, 1, MaxEdgeWeight, "")
		case u == 1 && zeroVertex:
			continue
		default:
			_, err = g.AddEdge(u-1, u, MaxEdgeWeight, "")
		}
		if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return fmt.Errorf("segmenter: connect vertex %d: %w", u, err)
		}
	}

	if n := g.CountComponents(); n != 1 {
		log.WithField("components", n).Warn("segmenter: fail to connect the lattice")
		return ErrRepairFailed
	}

	return nil
}

// BuildLattice returns the lattice of a syllable sequence: vertices 0..N
// and an edge i→j of weight CompoundWeight(j-i) for every span of at least
// two syllables that lex contains. Single syllables get no edge; Connect
// adds the ones needed.
//
// Complexity: O(N·L) lexicon queries, L the longest compound length.
func BuildLattice(syllables []string, lex Lexicon) *core.Graph {
	g := core.NewGraph(len(syllables))
	if lex == nil {
		return g
	}
	for i := range syllables {
		for j := i + 2; j <= len(syllables); j++ {
			word := strings.Join(syllables[i:j], " ")
			if !lex.HasPrefix(word) {
				break
			}
			if lex.Contains(word) {
				// Spans are unique per (i, j), so AddEdge cannot fail here.
				_, _ = g.AddEdge(i, j, CompoundWeight(j-i), word)
			}
		}
	}

	return g
}

// multiLexicon consults several lexicons in order.
type multiLexicon []Lexicon

func (m multiLexicon) Contains(word string) bool {
	for _, l := range m {
		if l.Contains(word) {
			return true
		}
	}

	return false
}

func (m multiLexicon) HasPrefix(prefix string) bool {
	for _, l := range m {
		if l.HasPrefix(prefix) {
			return true
		}
	}

	return false
}
