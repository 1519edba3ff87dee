package memcache

import (
	"sync"
)

// Turn is one completed query/response exchange.
type Turn struct {
	Query    string
	Response string
}

// ConversationStore keeps a bounded rolling window of turns per user.
// Append evicts the oldest turn once the capacity is exceeded; the window is
// the only in-memory state that outlives a single query.
type ConversationStore struct {
	mu       sync.RWMutex
	capacity int
	data     map[string][]Turn
}

func NewConversationStore(capacity int) *ConversationStore {
	if capacity <= 0 {
		capacity = 5
	}
	return &ConversationStore{
		capacity: capacity,
		data:     make(map[string][]Turn),
	}
}

func (s *ConversationStore) Append(userID string, turn Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := append(s.data[userID], turn)
	if len(turns) > s.capacity {
		turns = turns[len(turns)-s.capacity:]
	}
	s.data[userID] = turns
}

// History returns a copy so callers never share the backing slice.
func (s *ConversationStore) History(userID string) []Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.data[userID]
	out := make([]Turn, len(turns))
	copy(out, turns)
	return out
}

func (s *ConversationStore) Clear(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, userID)
}
