package handler

import (
	"log/slog"
	"net/http"

	"linkup/internal/delivery/http/response"
	"linkup/internal/domain/service"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile-related handlers.
type ProfileHandler struct {
	profiles usecase.ProfileUsecase
	sessions usecase.SessionUsecase
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(
	profiles usecase.ProfileUsecase,
	sessions usecase.SessionUsecase,
	tokens service.TokenService,
	logger *slog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profiles: profiles,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// GetProfile returns the profile currently bound to the session.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	snap := h.sessions.Snapshot()
	if snap.Profile == nil {
		return response.Error(c, http.StatusNotFound, "PROFILE_NOT_FOUND", "No profile is loaded for this session", "")
	}

	return response.Success(c, http.StatusOK, snap.Profile, "")
}

// CreateProfile writes the initial profile for the current identity and
// issues a flow token so the SPA may proceed to the onboarding detail pages.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	var input *usecase.CreateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profiles.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	flowToken, err := h.tokens.IssueFlowToken(profile.ID)
	if err != nil {
		// The profile exists; a failed token only degrades navigation.
		h.logger.Warn("failed to issue flow token", slog.Any("error", err))
		flowToken = ""
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"profile":    profile,
		"flow_token": flowToken,
	}, "Profile created")
}

// OnboardingState reports how far onboarding has progressed. It sits behind
// the flow token middleware so detail pages cannot be deep-linked.
func (h *ProfileHandler) OnboardingState(c echo.Context) error {
	snap := h.sessions.Snapshot()

	return response.Success(c, http.StatusOK, map[string]string{
		"onboarding": snap.Profile.Onboarding().String(),
	}, "")
}

// UpdateProfile merge-writes the supplied fields into the loaded profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	profile, err := h.profiles.Update(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, profile, "Profile updated")
}
