package entity

// PendingUpgradeToken carries federated account details between a successful
// federated sign-in and the creation of the profile for that identity. It
// must not outlive a single upgrade attempt, and it is only cleared when
// profile creation succeeds so a failed creation stays retryable.
type PendingUpgradeToken struct {
	CandidateID string // The persistent identity the session is upgrading into.
	Email       string
	DisplayName string
	AvatarURL   string
}

// ConflictRecord is returned when an upgrade discovers a pre-existing
// persistent profile for the target email under a different identity. It is
// a return value, never persisted state.
type ConflictRecord struct {
	Username string
}
