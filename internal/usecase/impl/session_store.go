// Package impl contains the application-specific business rules implementations.
package impl

import (
	"sync"

	"linkup/internal/domain/entity"
)

// SessionStore holds the in-memory {identity, profile} pair plus the loading
// flag and the pending upgrade token. It is the only place session state
// lives; every mutation is a full-slot replace of a cloned value, so
// concurrent readers never observe a torn write.
type SessionStore struct {
	mu          sync.RWMutex
	initialized bool
	loading     bool
	identity    *entity.Identity
	profile     *entity.Profile
	pending     *entity.PendingUpgradeToken
}

// NewSessionStore creates a store in the Initializing state: loading until
// the first auth-state notification arrives.
func NewSessionStore() *SessionStore {
	return &SessionStore{loading: true}
}

// Snapshot returns a consistent copy of the session slots. The state is
// derived from the slots, so a profile can never be visible while the
// identity is nil.
func (s *SessionStore) Snapshot() entity.SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.SessionSnapshot{
		State:    s.stateLocked(),
		Identity: s.identity.Clone(),
		Profile:  s.profile.Clone(),
		Loading:  s.loading,
	}
}

func (s *SessionStore) stateLocked() entity.SessionState {
	switch {
	case !s.initialized:
		return entity.SessionInitializing
	case s.identity == nil:
		return entity.SessionUnauthenticated
	case s.profile == nil:
		return entity.SessionAuthenticatedNoProfile
	default:
		return entity.SessionAuthenticatedWithProfile
	}
}

// ReplaceIdentity installs a new identity slot value. Only the session
// observer calls this; the first call moves the store out of Initializing.
// A nil identity also clears the profile slot, keeping the state machine's
// "no profile without identity" invariant.
func (s *SessionStore) ReplaceIdentity(identity *entity.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.identity = identity.Clone()
	if identity == nil {
		s.profile = nil
	}
}

// ReplaceProfile unconditionally installs a new profile slot value.
func (s *SessionStore) ReplaceProfile(profile *entity.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = profile.Clone()
}

// ApplyProfileFor installs a profile only while ownerID still matches the
// current identity. A load issued for a previous identity is discarded, so
// a stale in-flight load can never overwrite a newer one.
func (s *SessionStore) ApplyProfileFor(ownerID string, profile *entity.Profile) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil || s.identity.ID != ownerID {
		return false
	}
	s.profile = profile.Clone()

	return true
}

// SetLoading flips the loading flag.
func (s *SessionStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

// Identity returns a copy of the current identity slot.
func (s *SessionStore) Identity() *entity.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.identity.Clone()
}

// Profile returns a copy of the current profile slot.
func (s *SessionStore) Profile() *entity.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.profile.Clone()
}

// SetPending stashes the pending upgrade token.
func (s *SessionStore) SetPending(token *entity.PendingUpgradeToken) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = token
}

// Pending returns the pending upgrade token, if any.
func (s *SessionStore) Pending() *entity.PendingUpgradeToken {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.pending == nil {
		return nil
	}
	token := *s.pending

	return &token
}

// ClearPending drops the pending upgrade token.
func (s *SessionStore) ClearPending() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending = nil
}

// Clear wipes identity, profile and any session-scoped tokens. Used by
// sign-out, which must leave nothing authenticated-looking behind.
func (s *SessionStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.identity = nil
	s.profile = nil
	s.pending = nil
	s.loading = false
}
