package impl

import (
	"context"
	"log/slog"
	"time"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/repository"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cleanupService implements the CleanupUsecase interface: graceful sign-out
// cleanup, the abrupt-exit cleanup endpoint, and the orphan sweep.
type cleanupService struct {
	store    *SessionStore
	provider service.IdentityProvider
	repo     repository.ProfileRepository
	events   service.SessionEventPublisher
	logger   *slog.Logger
}

// NewCleanupService is the constructor for cleanupService.
func NewCleanupService(
	store *SessionStore,
	provider service.IdentityProvider,
	repo repository.ProfileRepository,
	events service.SessionEventPublisher,
	logger *slog.Logger,
) usecase.CleanupUsecase {
	return &cleanupService{
		store:    store,
		provider: provider,
		repo:     repo,
		events:   events,
		logger:   logger,
	}
}

// SignOut never blocks on cleanup and never surfaces remote errors: whatever
// happens upstream, local state ends up cleared and the UI cannot be left
// looking authenticated.
func (srv *cleanupService) SignOut(ctx context.Context) {
	identity := srv.store.Identity()

	if identity != nil && identity.IsAnonymous && srv.store.Profile() != nil {
		if err := srv.repo.Delete(ctx, identity.ID); err != nil {
			srv.logger.Warn("ephemeral profile cleanup failed during sign-out",
				slog.String("uid", identity.ID),
				slog.Any("error", err),
			)
			srv.publishEvent(ctx, entity.SessionEventOrphanSuspected, identity.ID, identity.Email)
		}
	}

	if err := srv.provider.SignOut(ctx); err != nil {
		srv.logger.Warn("remote sign-out failed, clearing local state anyway",
			slog.Any("error", err),
		)
	}

	srv.store.Clear()

	if identity != nil {
		srv.publishEvent(ctx, entity.SessionEventSignedOut, identity.ID, identity.Email)
	}
}

// CleanupAnonymous backs the best-effort exit-time endpoint. Deleting an
// already-absent record reports success, so retries and duplicate beacons
// are harmless.
func (srv *cleanupService) CleanupAnonymous(ctx context.Context, uid string) (*usecase.CleanupResult, error) {
	profile, err := srv.repo.Get(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return &usecase.CleanupResult{Deleted: false, UID: uid}, nil
		}

		return nil, errors.Wrap(err, "failed to look up profile for cleanup")
	}

	// Only ephemeral profiles may be swept through this path.
	if !profile.IsAnonymous {
		return nil, errors.Wrap(domainerrors.ErrProfileStorePermission, "refusing to delete a persistent profile")
	}

	if err := srv.repo.Delete(ctx, uid); err != nil {
		srv.publishEvent(ctx, entity.SessionEventOrphanSuspected, uid, profile.Email)

		return nil, errors.Wrap(err, "failed to delete anonymous profile")
	}

	return &usecase.CleanupResult{Deleted: true, UID: uid}, nil
}

// PurgeOrphans batch-deletes anonymous profiles that have been inactive for
// longer than olderThan. The exit-time beacon is best effort, so orphans are
// expected; this is the reconciliation hook that keeps them bounded.
func (srv *cleanupService) PurgeOrphans(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	ids, err := srv.repo.QueryAnonymousBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to query orphaned profiles")
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := srv.repo.DeleteBatch(ctx, ids); err != nil {
		return 0, errors.Wrap(err, "failed to batch-delete orphaned profiles")
	}

	srv.logger.Info("purged orphaned anonymous profiles",
		slog.Int("count", len(ids)),
	)

	return len(ids), nil
}

func (srv *cleanupService) publishEvent(ctx context.Context, eventType entity.SessionEventType, uid, email string) {
	event := &entity.SessionEvent{
		EventID: uuid.NewString(),
		Type:    eventType,
		UID:     uid,
		Email:   email,
		At:      time.Now().UTC(),
	}
	if err := srv.events.PublishSessionEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish session event",
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
