// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"linkup/internal/delivery/http/response"
	"linkup/internal/domain/entity"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SessionHandler holds dependencies for session lifecycle handlers.
type SessionHandler struct {
	sessions usecase.SessionUsecase
	upgrades usecase.UpgradeUsecase
	cleanup  usecase.CleanupUsecase
	provider service.IdentityProvider
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(
	sessions usecase.SessionUsecase,
	upgrades usecase.UpgradeUsecase,
	cleanup usecase.CleanupUsecase,
	provider service.IdentityProvider,
	tokens service.TokenService,
	logger *slog.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		upgrades: upgrades,
		cleanup:  cleanup,
		provider: provider,
		tokens:   tokens,
		logger:   logger,
	}
}

// snapshotDTO is the wire form of a session snapshot.
type snapshotDTO struct {
	State      string          `json:"state"`
	Loading    bool            `json:"loading"`
	Identity   *identityDTO    `json:"identity,omitempty"`
	Profile    *entity.Profile `json:"profile,omitempty"`
	Onboarding string          `json:"onboarding"`
}

type identityDTO struct {
	ID          string `json:"id"`
	IsAnonymous bool   `json:"is_anonymous"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
	AvatarURL   string `json:"avatar_url,omitempty"`
}

func toSnapshotDTO(snap entity.SessionSnapshot) *snapshotDTO {
	dto := &snapshotDTO{
		State:      snap.State.String(),
		Loading:    snap.Loading,
		Profile:    snap.Profile,
		Onboarding: snap.Profile.Onboarding().String(),
	}
	if snap.Identity != nil {
		dto.Identity = &identityDTO{
			ID:          snap.Identity.ID,
			IsAnonymous: snap.Identity.IsAnonymous,
			Email:       snap.Identity.Email,
			DisplayName: snap.Identity.DisplayName,
			AvatarURL:   snap.Identity.AvatarURL,
		}
	}

	return dto
}

// GetSession returns the current session snapshot.
func (h *SessionHandler) GetSession(c echo.Context) error {
	snap := h.sessions.Snapshot()

	return response.Success(c, http.StatusOK, toSnapshotDTO(snap), "")
}

// SignInAnonymous starts an ephemeral, device-scoped session.
func (h *SessionHandler) SignInAnonymous(c echo.Context) error {
	identity, err := h.sessions.SignInAnonymous(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, identity, "Anonymous session started")
}

// federatedInput carries the outcome of the SPA's interactive sign-in popup.
type federatedInput struct {
	IDToken   string `json:"id_token"`
	ErrorCode string `json:"error_code,omitempty"`
}

// SignInFederated signs in directly with a federated credential. Used for
// returning users who never had an anonymous session to upgrade.
func (h *SessionHandler) SignInFederated(c echo.Context) error {
	var input federatedInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sign-in input")
	}

	identity, err := h.provider.SignInFederated(c.Request().Context(), service.FederatedCredential{
		IDToken:   input.IDToken,
		ErrorCode: input.ErrorCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "Signed in")
}

// Upgrade links the current anonymous session to a federated account.
func (h *SessionHandler) Upgrade(c echo.Context) error {
	var input federatedInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid upgrade input")
	}

	result, err := h.upgrades.Upgrade(c.Request().Context(), service.FederatedCredential{
		IDToken:   input.IDToken,
		ErrorCode: input.ErrorCode,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if result.Conflict != nil {
		return response.Success(c, http.StatusOK, result, "That account already has a profile")
	}

	return response.Success(c, http.StatusOK, result, "Account linked")
}

// switchInput identifies the conflicting account chosen by the user.
type switchInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SwitchToExisting resolves an upgrade conflict in favour of the existing
// persistent profile.
func (h *SessionHandler) SwitchToExisting(c echo.Context) error {
	var input switchInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid switch input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.upgrades.SwitchToExisting(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toSnapshotDTO(h.sessions.Snapshot()), "Switched to existing profile")
}

// SignOut ends the session. It always reports success; remote cleanup
// failures are logged and reconciled later.
func (h *SessionHandler) SignOut(c echo.Context) error {
	h.cleanup.SignOut(c.Request().Context())

	return response.Success(c, http.StatusOK, toSnapshotDTO(h.sessions.Snapshot()), "Signed out")
}

// EntryToken issues a flow token for the current identity so the SPA can
// enter onboarding detail pages.
func (h *SessionHandler) EntryToken(c echo.Context) error {
	snap := h.sessions.Snapshot()
	if snap.Identity == nil {
		return response.Forbidden(c, "FLOW_TOKEN_INVALID", "No active session")
	}

	token, err := h.tokens.IssueFlowToken(snap.Identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"flow_token": token}, "")
}
