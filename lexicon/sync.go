package lexicon

import "sync"

// SyncRecognizer serializes access to a Recognizer.
type SyncRecognizer struct {
	mu sync.Mutex
	r  Recognizer
}

// Synchronized wraps r so that it can be shared between goroutines.
//
// Accept and WordList are locked separately; use AcceptWords when the
// word list of a particular Accept is needed.
func Synchronized(r Recognizer) *SyncRecognizer {
	return &SyncRecognizer{r: r}
}

// Accept calls Accept on the wrapped recognizer.
func (s *SyncRecognizer) Accept(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.r.Accept(token)
}

// WordList returns a copy of the wrapped recognizer's word list.
func (s *SyncRecognizer) WordList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.r.WordList()...)
}

// AcceptWords accepts token and returns the words found, as one atomic step.
func (s *SyncRecognizer) AcceptWords(token string) ([]string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.r.Accept(token) {
		return nil, false
	}

	return append([]string(nil), s.r.WordList()...), true
}

// Close closes the wrapped recognizer.
func (s *SyncRecognizer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.r.Close()
}
