// Package vntok segments Vietnamese text into words with a compiled lexicon
// automaton and a weighted candidate lattice.
//
// Vietnamese writes one syllable per space-separated token, and a word may
// span several syllables ("học sinh", student). vntok cuts a phrase into
// words in two ways and lets a resolver choose:
//
//   - a longest-match scan of a deterministic automaton built from the
//     lexicon, which backs off to the last word boundary when a match fails;
//   - a lattice over the gaps between syllables, with one edge per known
//     compound, repaired so that the end is reachable and solved by Dijkstra.
//
// Packages:
//
//	automaton/ - flat transition tables, trie builder, binary file mapped with mmap
//	simulator/ - longest-match scan with word boundary recovery
//	lexicon/   - recognizers over an automaton or a user word set, word list reader
//	core/      - forward-only weighted lattice graph
//	bfs/       - reachability over a lattice
//	dijkstra/  - shortest paths over a lattice
//	segmenter/ - normalization, lattice repair, ambiguity resolution, Tokenize
//	config/    - YAML settings with VNTOK_* environment overrides
//	cmd/vntok  - compile word lists, segment phrases
//
// Quick start:
//
//	rec, err := lexicon.NewDFARecognizer("lexicon.dfa")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s, _ := segmenter.New(rec)
//	defer s.Close()
//	words, err := s.Tokenize("Học sinh giỏi") // ["học sinh" "giỏi"]
package vntok
