// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"linkup/internal/domain/entity"
)

// SessionUsecase is the single externally-visible aggregate over the current
// identity, the current profile and the loading flag. Presentation code
// consumes snapshots and invokes operations; it never mutates the slots
// directly.
type SessionUsecase interface {
	// Run subscribes exactly once to auth-state notifications and drives
	// all downstream state until ctx is cancelled. It is purely reactive
	// and never invokes the provider's sign-in primitives itself.
	Run(ctx context.Context) error

	// Snapshot returns a consistent copy of {state, identity, profile, loading}.
	Snapshot() entity.SessionSnapshot

	// SignInAnonymous starts an ephemeral, device-scoped session.
	SignInAnonymous(ctx context.Context) (*entity.Identity, error)
}
