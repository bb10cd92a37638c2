package realtime

import "sync"

// Session is the live-connection handle the Registry tracks per user.
// *Connection is the production implementation; tests substitute fakes.
type Session interface {
	SessionID() string
	Send(payload []byte) error
}

// Registry maps authenticated user ids to their single live session.
// At most one session is registered per user at any instant; a new
// registration displaces the old one (last connection wins).
//
// The Registry never closes a displaced handle itself — that is the
// transport layer's job. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[int64]Session
}

// NewRegistry constructs an empty Registry. One instance is created at
// process start and shared by the socket handler and the delivery dispatcher.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[int64]Session)}
}

// Register installs or replaces the session for userID and returns the
// displaced session, if any, so the caller can close it.
func (r *Registry) Register(userID int64, s Session) Session {
	r.mu.Lock()
	previous := r.sessions[userID]
	r.sessions[userID] = s
	r.mu.Unlock()

	if previous != nil && previous.SessionID() == s.SessionID() {
		return nil
	}
	return previous
}

// Unregister removes the entry for userID only if the registered session is
// the same physical connection. A disconnect callback racing with a fast
// reconnect therefore cannot evict the newer registration.
func (r *Registry) Unregister(userID int64, s Session) {
	if s == nil {
		return
	}
	r.mu.Lock()
	if current, ok := r.sessions[userID]; ok && current.SessionID() == s.SessionID() {
		delete(r.sessions, userID)
	}
	r.mu.Unlock()
}

// Lookup returns the live session for userID, if one is registered.
func (r *Registry) Lookup(userID int64) (Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[userID]
	r.mu.RUnlock()
	return s, ok
}

// Len reports how many users currently have a live session.
func (r *Registry) Len() int {
	r.mu.RLock()
	n := len(r.sessions)
	r.mu.RUnlock()
	return n
}

// Clear drops every entry and returns the sessions that were registered so
// the caller can close them during shutdown.
func (r *Registry) Clear() []Session {
	r.mu.Lock()
	sessions := make([]Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	r.sessions = make(map[int64]Session)
	r.mu.Unlock()
	return sessions
}
