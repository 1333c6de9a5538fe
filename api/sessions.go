package api

import (
	"sync"

	"github.com/skyways/skybook/internal/service/booking"
)

// SessionHeader identifies the caller's booking session. Requests
// without it share the default session.
const SessionHeader = "X-Session-ID"

// SessionRegistry hands out one booking session per session id. Only
// the map is guarded; each session itself is single-writer by contract.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*booking.Session
	factory  func() *booking.Session
}

func NewSessionRegistry(factory func() *booking.Session) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*booking.Session),
		factory:  factory,
	}
}

func (r *SessionRegistry) Get(id string) *booking.Session {
	if id == "" {
		id = "default"
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		s = r.factory()
		r.sessions[id] = s
	}
	return s
}
