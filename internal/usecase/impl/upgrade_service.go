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

// upgradeService implements the UpgradeUsecase interface: the
// anonymous-to-persistent transition and its conflict resolution.
type upgradeService struct {
	store    *SessionStore
	provider service.IdentityProvider
	repo     repository.ProfileRepository
	profiles usecase.ProfileUsecase
	events   service.SessionEventPublisher
	logger   *slog.Logger
}

// NewUpgradeService is the constructor for upgradeService.
func NewUpgradeService(
	store *SessionStore,
	provider service.IdentityProvider,
	repo repository.ProfileRepository,
	profiles usecase.ProfileUsecase,
	events service.SessionEventPublisher,
	logger *slog.Logger,
) usecase.UpgradeUsecase {
	return &upgradeService{
		store:    store,
		provider: provider,
		repo:     repo,
		profiles: profiles,
		events:   events,
		logger:   logger,
	}
}

// Upgrade links the current anonymous session to a persistent account. The
// ephemeral profile is only deleted after the federated sign-in and the
// conflict check have both succeeded, so no failure path destroys it.
func (srv *upgradeService) Upgrade(ctx context.Context, cred service.FederatedCredential) (*usecase.UpgradeResult, error) {
	identity := srv.store.Identity()
	profile := srv.store.Profile()
	if identity == nil || !identity.IsAnonymous || profile == nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidUpgradeState)
	}

	upgraded, err := srv.provider.SignInFederated(ctx, cred)
	if err != nil {
		return nil, errors.Wrap(err, "federated sign-in failed")
	}

	// Profile linking is email-keyed; a federated account without an email
	// cannot be upgraded into.
	if upgraded.Email == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingEmail)
	}

	matches, err := srv.repo.QueryByEmail(ctx, upgraded.Email)
	if err != nil {
		return nil, errors.Wrap(err, "conflict check failed")
	}
	for _, match := range matches {
		if match.ID == identity.ID {
			continue
		}
		srv.logger.Info("upgrade found existing profile for email",
			slog.String("uid", identity.ID),
			slog.String("existingUid", match.ID),
		)

		return &usecase.UpgradeResult{
			Conflict: &entity.ConflictRecord{Username: match.Username},
		}, nil
	}

	// New user on the persistent side: stash the account details for the
	// upcoming profile creation, then retire the ephemeral record.
	srv.store.SetPending(&entity.PendingUpgradeToken{
		CandidateID: upgraded.ID,
		Email:       upgraded.Email,
		DisplayName: upgraded.DisplayName,
		AvatarURL:   upgraded.AvatarURL,
	})

	if err := srv.repo.Delete(ctx, identity.ID); err != nil {
		// The ephemeral profile survived, so the attempt can simply be
		// retried; the token must not outlive this attempt.
		srv.store.ClearPending()

		return nil, errors.Wrap(err, "failed to delete ephemeral profile")
	}

	srv.store.ReplaceProfile(nil)

	srv.publishEvent(ctx, entity.SessionEventUpgraded, upgraded)

	srv.logger.Info("anonymous session upgraded",
		slog.String("from", identity.ID),
		slog.String("to", upgraded.ID),
	)

	return &usecase.UpgradeResult{IsNewUser: true}, nil
}

// SwitchToExisting resolves an upgrade conflict in favour of the existing
// persistent profile. The authentication identity was already switched by
// the federated sign-in; this only decides which profile is authoritative.
func (srv *upgradeService) SwitchToExisting(ctx context.Context, email string) error {
	matches, err := srv.repo.QueryByEmail(ctx, email)
	if err != nil {
		return errors.Wrap(err, "failed to look up existing profile")
	}
	if len(matches) == 0 {
		return errors.WithStack(domainerrors.ErrProfileStoreNotFound)
	}
	existing := matches[0]

	if current := srv.store.Profile(); current != nil && current.IsAnonymous && current.ID != existing.ID {
		if err := srv.repo.Delete(ctx, current.ID); err != nil {
			return errors.Wrap(err, "failed to delete ephemeral profile")
		}
	}

	if err := srv.repo.Merge(ctx, existing.ID, map[string]any{
		repository.FieldLastActive: time.Now().UTC(),
	}); err != nil {
		srv.logger.Warn("failed to touch last-active on existing profile",
			slog.String("uid", existing.ID),
			slog.Any("error", err),
		)
	}

	srv.store.ClearPending()
	srv.profiles.Load(ctx, existing.ID)

	return nil
}

func (srv *upgradeService) publishEvent(ctx context.Context, eventType entity.SessionEventType, identity *entity.Identity) {
	event := &entity.SessionEvent{
		EventID: uuid.NewString(),
		Type:    eventType,
		UID:     identity.ID,
		Email:   identity.Email,
		At:      time.Now().UTC(),
	}
	if err := srv.events.PublishSessionEvent(ctx, event); err != nil {
		srv.logger.Warn("failed to publish session event",
			slog.String("type", string(eventType)),
			slog.Any("error", err),
		)
	}
}
