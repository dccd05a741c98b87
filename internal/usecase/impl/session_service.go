package impl

import (
	"context"
	"log/slog"
	"time"

	"linkup/internal/domain/entity"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// sessionService implements the SessionUsecase interface. It owns the
// auth-state subscription and is the only writer of the identity slot.
type sessionService struct {
	store    *SessionStore
	provider service.IdentityProvider
	profiles usecase.ProfileUsecase
	events   service.SessionEventPublisher
	logger   *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	store *SessionStore,
	provider service.IdentityProvider,
	profiles usecase.ProfileUsecase,
	events service.SessionEventPublisher,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		store:    store,
		provider: provider,
		profiles: profiles,
		events:   events,
		logger:   logger,
	}
}

// Run subscribes exactly once and processes auth-state notifications in
// delivery order until ctx is cancelled. The subscription is cancelled
// exactly once on the way out.
func (srv *sessionService) Run(ctx context.Context) error {
	states, cancel := srv.provider.Subscribe(ctx)
	defer cancel()

	srv.logger.Info("session observer started")

	for {
		select {
		case <-ctx.Done():
			return errors.WithStack(ctx.Err())
		case identity, ok := <-states:
			if !ok {
				srv.logger.Info("auth-state stream closed, session observer stopping")

				return nil
			}
			srv.handleAuthState(ctx, identity)
		}
	}
}

// handleAuthState is the only writer of the identity slot. A nil
// notification clears everything; a non-nil one triggers a profile load
// tagged with the notified identity id, whose result is discarded if a newer
// notification has replaced the identity in the meantime.
func (srv *sessionService) handleAuthState(ctx context.Context, identity *entity.Identity) {
	if identity == nil {
		srv.logger.Debug("auth state: signed out")
		srv.store.ReplaceIdentity(nil)
		srv.store.SetLoading(false)

		return
	}

	srv.logger.Debug("auth state: signed in",
		slog.String("uid", identity.ID),
		slog.Bool("anonymous", identity.IsAnonymous),
	)

	srv.store.ReplaceIdentity(identity)
	srv.store.SetLoading(true)
	// A missing profile is not an error here: it means onboarding is
	// incomplete. Loading always ends regardless of the load outcome.
	srv.profiles.Load(ctx, identity.ID)
	srv.store.SetLoading(false)
}

// Snapshot returns the current session view.
func (srv *sessionService) Snapshot() entity.SessionSnapshot {
	return srv.store.Snapshot()
}

// SignInAnonymous starts an ephemeral session. The resulting identity also
// arrives through the auth-state subscription; the return value lets the
// caller respond without waiting for the observer.
func (srv *sessionService) SignInAnonymous(ctx context.Context) (*entity.Identity, error) {
	identity, err := srv.provider.SignInAnonymous(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "anonymous sign-in failed")
	}

	srv.publishEvent(ctx, entity.SessionEventSignedIn, identity)

	return identity, nil
}

func (srv *sessionService) publishEvent(ctx context.Context, eventType entity.SessionEventType, identity *entity.Identity) {
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
