package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"linkup/internal/delivery/http/response"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CleanupHandler serves the best-effort cleanup endpoint hit on abrupt page
// exit (sendBeacon / keepalive fetch). The caller usually never reads the
// response, so the contract favours idempotency over precision.
type CleanupHandler struct {
	cleanup usecase.CleanupUsecase
	logger  *slog.Logger
}

// NewCleanupHandler is the constructor for CleanupHandler, injected by Fx.
func NewCleanupHandler(cleanup usecase.CleanupUsecase, logger *slog.Logger) *CleanupHandler {
	return &CleanupHandler{
		cleanup: cleanup,
		logger:  logger,
	}
}

// cleanupInput identifies the anonymous account to clean up.
type cleanupInput struct {
	UID string `json:"uid"`
}

// CleanupAnonymous deletes the anonymous profile for the given uid.
// Absent records report success, so retries and races are harmless.
func (h *CleanupHandler) CleanupAnonymous(c echo.Context) error {
	var input cleanupInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid cleanup input")
	}

	uid := strings.TrimSpace(input.UID)
	if uid == "" {
		return response.BadRequest(c, "INVALID_INPUT", "uid is required")
	}

	result, err := h.cleanup.CleanupAnonymous(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProfileStorePermission) {
			return response.Forbidden(c, domainerrors.ErrProfileStorePermission.ErrorCode(),
				domainerrors.ErrProfileStorePermission.Message())
		}
		h.logger.Error("cleanup failed", slog.String("uid", uid), slog.Any("error", err))

		return response.Error(c, http.StatusInternalServerError, "CLEANUP_FAILED", "Cleanup failed", "")
	}

	return response.Success(c, http.StatusOK, result, "")
}
