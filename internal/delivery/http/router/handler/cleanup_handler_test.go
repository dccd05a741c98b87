package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	custommiddleware "linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/response"
	domainerrors "linkup/internal/domain/errors"
	mocksusecase "linkup/internal/mocks/usecase"
	"linkup/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCleanupServer builds a minimal echo app with just the cleanup route so
// the handler is exercised exactly as deployed, including method handling
// and the error envelope.
func newCleanupServer(t *testing.T) (*echo.Echo, *mocksusecase.MockCleanupUsecase) {
	t.Helper()

	cleanup := mocksusecase.NewMockCleanupUsecase(t)
	logger := newDiscardLogger()

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = custommiddleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/cleanup-anonymous", NewCleanupHandler(cleanup, logger).CleanupAnonymous)

	return e, cleanup
}

func doCleanupRequest(e *echo.Echo, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/cleanup-anonymous", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestCleanupHandler_DeletedProfile(t *testing.T) {
	e, cleanup := newCleanupServer(t)

	cleanup.EXPECT().
		CleanupAnonymous(mock.Anything, "u1").
		Return(&usecase.CleanupResult{Deleted: true, UID: "u1"}, nil)

	rec := doCleanupRequest(e, http.MethodPost, `{"uid":"u1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestCleanupHandler_AbsentProfileIsStillSuccess(t *testing.T) {
	e, cleanup := newCleanupServer(t)

	cleanup.EXPECT().
		CleanupAnonymous(mock.Anything, "u1").
		Return(&usecase.CleanupResult{Deleted: false, UID: "u1"}, nil)

	// The beacon may fire twice; the second call must look identical.
	rec := doCleanupRequest(e, http.MethodPost, `{"uid":"u1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCleanupHandler_MissingUID(t *testing.T) {
	e, _ := newCleanupServer(t)

	for _, body := range []string{`{}`, `{"uid":"   "}`} {
		rec := doCleanupRequest(e, http.MethodPost, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", body)
	}
}

func TestCleanupHandler_MalformedBody(t *testing.T) {
	e, _ := newCleanupServer(t)

	rec := doCleanupRequest(e, http.MethodPost, `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCleanupHandler_PermissionDenied(t *testing.T) {
	e, cleanup := newCleanupServer(t)

	cleanup.EXPECT().
		CleanupAnonymous(mock.Anything, "u2").
		Return(nil, errors.Wrap(domainerrors.ErrProfileStorePermission, "refusing to delete a persistent profile"))

	rec := doCleanupRequest(e, http.MethodPost, `{"uid":"u2"}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "PROFILE_STORE_PERMISSION", body.Error.Code)
}

func TestCleanupHandler_UnexpectedFailure(t *testing.T) {
	e, cleanup := newCleanupServer(t)

	cleanup.EXPECT().
		CleanupAnonymous(mock.Anything, "u1").
		Return(nil, errors.New("store offline"))

	rec := doCleanupRequest(e, http.MethodPost, `{"uid":"u1"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCleanupHandler_MethodNotAllowed(t *testing.T) {
	e, _ := newCleanupServer(t)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := doCleanupRequest(e, method, "")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "method: %s", method)
	}
}
