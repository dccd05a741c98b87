// Package firebase implements the identity provider contract on top of
// Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"
	"sync"

	"linkup/internal/domain/entity"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/service"

	fb "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// Provider adapts Firebase Authentication to the IdentityProvider contract.
// The SPA performs the interactive popup flow and posts the resulting ID
// token (or the provider's error code); this side verifies credentials,
// manages user records and republishes auth state.
type Provider struct {
	client *auth.Client
	hub    *authStateHub
	logger *slog.Logger

	mu         sync.Mutex
	currentUID string
}

// NewProvider creates a Firebase-backed identity provider.
func NewProvider(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.IdentityProvider, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := fb.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get auth client")
	}

	return &Provider{
		client: client,
		hub:    newAuthStateHub(),
		logger: logger,
	}, nil
}

// Subscribe implements the auth-state stream consumed by the session observer.
func (p *Provider) Subscribe(ctx context.Context) (<-chan *entity.Identity, func()) {
	return p.hub.Subscribe(ctx)
}

// SignInAnonymous creates an ephemeral, credential-less user record.
func (p *Provider) SignInAnonymous(ctx context.Context) (*entity.Identity, error) {
	record, err := p.client.CreateUser(ctx, &auth.UserToCreate{})
	if err != nil {
		p.logger.Error("anonymous sign-in failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthNetwork, err.Error())
	}

	identity := &entity.Identity{
		ID:          record.UID,
		IsAnonymous: true,
	}

	p.setCurrent(identity.ID)
	p.hub.Publish(identity)

	return identity, nil
}

// SignInFederated exchanges the client-side popup outcome for a persistent
// identity. A cancelled or blocked popup surfaces as the matching domain
// error rather than a crash.
func (p *Provider) SignInFederated(ctx context.Context, cred service.FederatedCredential) (*entity.Identity, error) {
	if cred.ErrorCode != "" {
		return nil, errors.WithStack(mapAuthErrorCode(cred.ErrorCode))
	}
	if cred.IDToken == "" {
		return nil, errors.WithStack(domainerrors.ErrPopupClosed)
	}

	token, err := p.client.VerifyIDToken(ctx, cred.IDToken)
	if err != nil {
		p.logger.Error("federated token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrAuthNetwork, err.Error())
	}

	record, err := p.client.GetUser(ctx, token.UID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrAuthNetwork, err.Error())
	}

	identity := &entity.Identity{
		ID:          record.UID,
		IsAnonymous: false,
		Email:       record.Email,
		DisplayName: record.DisplayName,
		AvatarURL:   record.PhotoURL,
	}

	p.setCurrent(identity.ID)
	p.hub.Publish(identity)

	return identity, nil
}

// SignOut revokes the current user's refresh tokens and publishes the
// signed-out state. Revocation failure is returned to the caller, who is
// expected to clear local state regardless.
func (p *Provider) SignOut(ctx context.Context) error {
	uid := p.takeCurrent()

	// The signed-out state is published even when revocation fails; local
	// state must never stay authenticated-looking.
	defer p.hub.Publish(nil)

	if uid == "" {
		return nil
	}

	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

func (p *Provider) setCurrent(uid string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.currentUID = uid
}

func (p *Provider) takeCurrent() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	uid := p.currentUID
	p.currentUID = ""

	return uid
}

func mapAuthErrorCode(code string) error {
	switch code {
	case service.AuthErrorPopupClosed:
		return domainerrors.ErrPopupClosed
	case service.AuthErrorPopupBlocked:
		return domainerrors.ErrPopupBlocked
	case service.AuthErrorNetwork:
		return domainerrors.ErrAuthNetwork
	default:
		return domainerrors.ErrAuthNetwork.WithDetails(code)
	}
}
