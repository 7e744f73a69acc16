package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Session is one long-lived runner conversation context.
type Session struct {
	ID             string
	ConversationID string
	CreatedAt      time.Time
}

// Store maps conversation ids to runner sessions. Entries are bounded and
// TTL-evicted, so an abandoned conversation simply gets a fresh session on
// its next message. Safe for concurrent use.
type Store struct {
	sessions *expirable.LRU[string, Session]
	now      func() time.Time
}

const (
	defaultMaxEntries = 1000
	defaultTTL        = 30 * time.Minute
)

// NewStore creates a session store. Non-positive maxEntries or ttl fall
// back to the defaults.
func NewStore(maxEntries int, ttl time.Duration) *Store {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{
		sessions: expirable.NewLRU[string, Session](maxEntries, nil, ttl),
		now:      time.Now,
	}
}

// GetOrCreate returns the live session for conversationID, creating one
// when none exists or the previous one expired.
func (s *Store) GetOrCreate(conversationID string) Session {
	if sess, ok := s.sessions.Get(conversationID); ok {
		return sess
	}

	sess := Session{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		CreatedAt:      s.now(),
	}
	s.sessions.Add(conversationID, sess)
	return sess
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	return s.sessions.Len()
}
