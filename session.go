package console

import (
	"fmt"
	"sync"
)

// SessionEmailUnknown is the placeholder email for sessions rebuilt from the
// durable slot. Only the raw token is persisted, so the login email cannot
// be recovered after a restart.
const SessionEmailUnknown = "unknown"

// Session holds the authenticated identity for the console.
type Session struct {
	ID    string   `json:"id"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
	Token string   `json:"-"`
}

func (s Session) String() string {
	return fmt.Sprintf("user=%s email=%s role=%s", s.ID, s.Email, s.Role)
}

// Store is the single process-wide holder of the current Session and the
// loading flag. All reads go through it; writers are the Auther, the Bridge,
// and logout. Session writes carry a sequence number reserved with Begin so
// that an async operation resolving late is discarded instead of clobbering
// a newer state.
type Store struct {
	mu          sync.RWMutex
	session     *Session
	loading     bool
	issued      uint64
	applied     uint64
	subscribers map[int]func(*Session)
	nextSubID   int
}

func NewStore() *Store {
	return &Store{
		subscribers: map[int]func(*Session){},
	}
}

// Session returns the current session or nil. Callers must treat the value
// as read-only; there is no competing copy to reconcile.
func (s *Store) Session() *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Authenticated reports whether a session is present.
func (s *Store) Authenticated() bool {
	return s.Session() != nil
}

// Loading reports whether a login or rehydration is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// SetLoading flips the loading flag. Callers pair it with defer so the flag
// is reset on every exit path, including error returns.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	s.loading = loading
	s.mu.Unlock()
}

// Begin reserves the next position in the session write order. The returned
// token is handed back to Apply when the operation resolves.
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// Apply installs the session for the operation identified by op. It returns
// false, leaving the store untouched, when a later operation already
// applied; the most recent authoritative operation wins regardless of which
// network call settled first. Subscribers observe the new value before
// Apply returns.
func (s *Store) Apply(op uint64, session *Session) bool {
	s.mu.Lock()
	if op <= s.applied {
		s.mu.Unlock()
		return false
	}
	s.applied = op
	s.session = session
	subscribers := make([]func(*Session), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(session)
	}
	return true
}

// Set applies a session as a fresh operation, superseding anything in flight.
func (s *Store) Set(session *Session) {
	s.Apply(s.Begin(), session)
}

// Subscribe registers fn to run synchronously after each applied session
// write. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(*Session)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}
