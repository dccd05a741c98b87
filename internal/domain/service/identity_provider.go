// Package service defines interfaces for domain services whose concrete
// implementations live in the infrastructure layer.
package service

import (
	"context"

	"linkup/internal/domain/entity"
)

// FederatedCredential is the outcome of the client-side federated sign-in
// flow. Exactly one of IDToken or ErrorCode is expected: a completed flow
// posts the provider ID token, a cancelled or blocked flow posts the
// provider's error code instead.
type FederatedCredential struct {
	IDToken   string
	ErrorCode string
}

// Provider error codes surfaced by the client-side sign-in flow.
const (
	AuthErrorPopupClosed  = "popup_closed"
	AuthErrorPopupBlocked = "popup_blocked"
	AuthErrorNetwork      = "network_failure"
)

// IdentityProvider abstracts the external identity provider. The session
// observer consumes the subscription; user-initiated operations call the
// sign-in/sign-out primitives, which re-publish the resulting auth state on
// every active subscription (nil after sign-out).
type IdentityProvider interface {
	// Subscribe returns a stream of auth-state notifications and a cancel
	// function. The cancel function is idempotent and must be called at
	// teardown.
	Subscribe(ctx context.Context) (<-chan *entity.Identity, func())

	// SignInAnonymous creates an ephemeral, device-scoped identity.
	SignInAnonymous(ctx context.Context) (*entity.Identity, error)

	// SignInFederated exchanges a federated credential for a persistent
	// identity. Cancellation surfaces as ErrPopupClosed, not a crash.
	SignInFederated(ctx context.Context, cred FederatedCredential) (*entity.Identity, error)

	// SignOut invalidates the current identity with the remote provider.
	SignOut(ctx context.Context) error
}
