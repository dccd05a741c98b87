package entity

// SessionState is the externally-visible state of the session lifecycle
// machine. The state is always derived from the identity/profile slots, so
// "profile without identity" is unrepresentable in a snapshot.
type SessionState int

const (
	// SessionInitializing holds until the first auth-state notification.
	SessionInitializing SessionState = iota
	// SessionUnauthenticated means no identity is active.
	SessionUnauthenticated
	// SessionAuthenticatedNoProfile means an identity is active but
	// onboarding has not produced a profile yet.
	SessionAuthenticatedNoProfile
	// SessionAuthenticatedWithProfile means identity and profile are bound.
	SessionAuthenticatedWithProfile
)

// String returns a human-readable state name.
func (s SessionState) String() string {
	switch s {
	case SessionInitializing:
		return "initializing"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticatedNoProfile:
		return "authenticated_no_profile"
	case SessionAuthenticatedWithProfile:
		return "authenticated_with_profile"
	default:
		return "unknown"
	}
}

// SessionSnapshot is a consistent, fully-copied view of the session slots.
// Every mutation of the underlying slots is a full-slot replace, so a
// snapshot never observes a torn write.
type SessionSnapshot struct {
	State    SessionState
	Identity *Identity
	Profile  *Profile
	Loading  bool
}
