// Package bot implements the dialogue engine that walks a user from a
// blank session to a deployable profile README.
package bot

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/profile-forge/internal/types"
)

// State identifies where a conversation is in the collection flow.
type State string

// Conversation states, in the order the flow visits them.
const (
	StateStart              State = "start"
	StateWaitingName        State = "waiting_name"
	StateWaitingGitHub      State = "waiting_github"
	StateWaitingLinkedIn    State = "waiting_linkedin"
	StateWaitingPortfolio   State = "waiting_portfolio"
	StateWaitingEmail       State = "waiting_email"
	StateWaitingDescription State = "waiting_description"
	StateConfirmation       State = "confirmation"
	StateCompleted          State = "completed"
)

// Session holds one user's conversation state and the profile being
// assembled. All access goes through the engine while the manager owns
// the lifecycle.
type Session struct {
	ID        string
	State     State
	Profile   types.ProfileData
	Readme    string
	CreatedAt time.Time
	UpdatedAt time.Time

	mu sync.Mutex
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}

// SessionView is a read-only copy of a session's current state.
type SessionView struct {
	ID      string
	State   State
	Profile types.ProfileData
	Readme  string
}

// Snapshot returns a copy of the session safe to read while the engine
// may be advancing it concurrently.
func (s *Session) Snapshot() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionView{
		ID:      s.ID,
		State:   s.State,
		Profile: s.Profile,
		Readme:  s.Readme,
	}
}

// Manager owns active sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates an empty session manager.
func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create starts a new session in the initial state.
func (m *Manager) Create() *Session {
	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		State:     StateStart,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
	return session
}

// Get returns the session with the given id.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return session, nil
}

// End removes a session.
func (m *Manager) End(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Len reports the number of active sessions.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// PruneIdle removes sessions whose last activity is older than maxIdle
// and returns how many were dropped.
func (m *Manager) PruneIdle(maxIdle time.Duration) int {
	cutoff := time.Now().Add(-maxIdle)

	m.mu.Lock()
	defer m.mu.Unlock()
	pruned := 0
	for id, session := range m.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(m.sessions, id)
			pruned++
		}
	}
	return pruned
}
