package automaton

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// trieNode is the in-memory node used while building; it is flattened by Build.
type trieNode struct {
	children map[rune]*trieNode
	final    bool
}

// Builder compiles a set of words into a deterministic automaton.
//
// The result is a plain trie: shared prefixes share states, suffixes are
// not merged. Words may be added in any order; duplicates are ignored.
type Builder struct {
	root  *trieNode
	words int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{root: &trieNode{children: make(map[rune]*trieNode)}}
}

// Add inserts word into the lexicon being built.
// It returns ErrEmptyWord for "" and an error for invalid UTF-8.
func (b *Builder) Add(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	if !utf8.ValidString(word) {
		return fmt.Errorf("automaton: invalid UTF-8 in %q", word)
	}
	n := b.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			child = &trieNode{children: make(map[rune]*trieNode)}
			n.children[r] = child
		}
		n = child
	}
	if !n.final {
		n.final = true
		b.words++
	}

	return nil
}

// AddAll inserts every word, stopping at the first error.
func (b *Builder) AddAll(words ...string) error {
	for _, w := range words {
		if err := b.Add(w); err != nil {
			return err
		}
	}

	return nil
}

// Len returns the number of distinct words added so far.
func (b *Builder) Len() int { return b.words }

// Build flattens the trie into an Automaton.
//
// States are numbered in breadth-first order so the root is state 0 and the
// edges of every state are contiguous and sorted by rune.
//
// Complexity: O(S + E log d).
func (b *Builder) Build() *Automaton {
	var (
		states []FlatState
		edges  []FlatEdge
	)
	queue := []*trieNode{b.root}
	for qi := 0; qi < len(queue); qi++ {
		n := queue[qi]
		keys := make([]rune, 0, len(n.children))
		for r := range n.children {
			keys = append(keys, r)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		st := FlatState{EdgesIdx: uint32(len(edges)), EdgesLen: uint32(len(keys))}
		if n.final {
			st.Final = 1
		}
		states = append(states, st)
		for _, r := range keys {
			child := n.children[r]
			id := uint32(len(queue))
			queue = append(queue, child)
			edges = append(edges, FlatEdge{Char: int32(r), Target: id})
		}
	}

	return &Automaton{states: states, edges: edges}
}
