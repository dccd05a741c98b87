package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkup/config"
	domainerrors "linkup/internal/domain/errors"
)

func newTestConfig(ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Flow = "test-flow-secret"
	cfg.Session = &config.SessionConfig{FlowTokenTTL: ttl}

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	require.Error(t, err)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Minute))
	require.NoError(t, err)

	token, err := svc.IssueFlowToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, err := svc.ValidateFlowToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", uid)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(-time.Minute))
	require.NoError(t, err)

	token, err := svc.IssueFlowToken("user-123")
	require.NoError(t, err)

	_, err = svc.ValidateFlowToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFlowTokenInvalid)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(time.Minute))
	require.NoError(t, err)

	_, err = svc.ValidateFlowToken("not-a-token")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFlowTokenInvalid)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig(time.Minute))
	require.NoError(t, err)

	otherCfg := newTestConfig(time.Minute)
	otherCfg.SecretKey.Flow = "different-secret"
	verifier, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := issuer.IssueFlowToken("user-123")
	require.NoError(t, err)

	_, err = verifier.ValidateFlowToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrFlowTokenInvalid)
}
