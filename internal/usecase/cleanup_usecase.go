package usecase

import (
	"context"
	"time"
)

// CleanupUsecase guarantees ephemeral profile removal on graceful sign-out
// and backs the best-effort cleanup endpoint used on abrupt page exit.
type CleanupUsecase interface {
	// SignOut deletes the ephemeral profile (best effort), signs out with
	// the provider (best effort) and unconditionally clears local state.
	// It has no failure mode observable by the caller: remote errors are
	// only logged.
	SignOut(ctx context.Context)

	// CleanupAnonymous deletes the anonymous profile for uid. Absent
	// records are reported as already clean, so the operation is
	// idempotent.
	CleanupAnonymous(ctx context.Context, uid string) (*CleanupResult, error)

	// PurgeOrphans batch-deletes anonymous profiles whose last activity is
	// older than the cutoff. This is the hook the periodic reconciliation
	// job calls.
	PurgeOrphans(ctx context.Context, olderThan time.Duration) (int, error)
}

// CleanupResult reports the outcome of a cleanup request.
type CleanupResult struct {
	Deleted bool   `json:"deleted"`
	UID     string `json:"uid"`
}
