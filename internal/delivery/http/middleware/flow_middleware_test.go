package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "linkup/internal/domain/errors"
	mocksservice "linkup/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlowTestServer(t *testing.T) (*echo.Echo, *mocksservice.MockTokenService) {
	t.Helper()

	tokens := mocksservice.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	flow := NewFlowMiddleware(tokens, logger)
	e.GET("/onboarding/state", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{"uid": c.Get(ContextKeyFlowUID)})
	}, flow.RequireFlowToken)

	return e, tokens
}

func TestFlowMiddleware_ValidTokenPasses(t *testing.T) {
	e, tokens := newFlowTestServer(t)

	tokens.EXPECT().
		ValidateFlowToken("good-token").
		Return("u1", nil)

	req := httptest.NewRequest(http.MethodGet, "/onboarding/state", nil)
	req.Header.Set(FlowTokenHeader, "good-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "u1")
}

func TestFlowMiddleware_QueryParamFallback(t *testing.T) {
	e, tokens := newFlowTestServer(t)

	tokens.EXPECT().
		ValidateFlowToken("good-token").
		Return("u1", nil)

	req := httptest.NewRequest(http.MethodGet, "/onboarding/state?flow_token=good-token", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFlowMiddleware_MissingTokenForbidden(t *testing.T) {
	e, _ := newFlowTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/onboarding/state", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFlowMiddleware_InvalidTokenForbidden(t *testing.T) {
	e, tokens := newFlowTestServer(t)

	tokens.EXPECT().
		ValidateFlowToken("bad-token").
		Return("", domainerrors.ErrFlowTokenInvalid)

	req := httptest.NewRequest(http.MethodGet, "/onboarding/state", nil)
	req.Header.Set(FlowTokenHeader, "bad-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
