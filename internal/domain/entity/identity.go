// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Identity is the authentication-side view of a user, owned exclusively by
// the identity provider. The session core only observes it: it is created by
// sign-in calls and destroyed by sign-out, and survives reloads through
// provider-managed persistence.
type Identity struct {
	ID          string // Opaque provider uid.
	IsAnonymous bool   // True for ephemeral, device-bound identities.
	Email       string // Linked email, empty for anonymous identities.
	DisplayName string // Display name reported by the federated provider, if any.
	AvatarURL   string // Avatar picture URL reported by the federated provider, if any.
}

// Clone returns a copy so callers can hand out identity snapshots without
// sharing the slot value.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}
	clone := *i

	return &clone
}
