package confirm

import "sync"

// Set is the suppression set: message ids whose component interactions are
// owned by an in-flight confirmation wait, so the generic dispatcher must not
// treat them as new commands. Safe for concurrent use.
type Set struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

func NewSet() *Set {
	return &Set{ids: make(map[string]struct{})}
}

func (s *Set) Add(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[messageID] = struct{}{}
}

func (s *Set) Remove(messageID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.ids, messageID)
}

func (s *Set) Contains(messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[messageID]
	return ok
}
