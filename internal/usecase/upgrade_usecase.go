package usecase

import (
	"context"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/service"
)

// UpgradeUsecase moves an ephemeral identity to a persistent one while
// preserving the ephemeral profile's data, unless the target account already
// owns a profile.
type UpgradeUsecase interface {
	// Upgrade drives the anonymous-to-persistent transition. A returned
	// Conflict leaves both profiles untouched; IsNewUser means the
	// ephemeral profile was deleted and the caller should proceed to
	// profile creation under the new identity.
	Upgrade(ctx context.Context, cred service.FederatedCredential) (*UpgradeResult, error)

	// SwitchToExisting resolves a conflict in favour of the pre-existing
	// persistent profile: the caller's ephemeral profile is deleted and
	// the existing record becomes the session profile.
	SwitchToExisting(ctx context.Context, email string) error
}

// UpgradeResult is the outcome of a non-failed upgrade attempt.
type UpgradeResult struct {
	IsNewUser bool                   `json:"is_new_user"`
	Conflict  *entity.ConflictRecord `json:"conflict,omitempty"`
}
