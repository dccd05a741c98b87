// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"linkup/config"
	domainerrors "linkup/internal/domain/errors"
	"linkup/internal/domain/service"
)

// jwtService implements TokenService with signed flow tokens. A flow token
// marks that its bearer just completed profile creation, so onboarding
// detail pages may be entered; it carries no other authority.
type jwtService struct {
	flowSecret string
	flowTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Flow == "" {
		return nil, errors.New("flow token secret must be provided")
	}

	ttl := 15 * time.Minute
	if cfg.Session != nil && cfg.Session.FlowTokenTTL > 0 {
		ttl = cfg.Session.FlowTokenTTL
	}

	return &jwtService{
		flowSecret: cfg.SecretKey.Flow,
		flowTTL:    ttl,
	}, nil
}

// IssueFlowToken creates a short-lived token bound to the given user.
func (s *jwtService) IssueFlowToken(uid string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  uid,
		"iat":  now.Unix(),
		"exp":  now.Add(s.flowTTL).Unix(),
		"type": "flow",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.flowSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign flow token")
	}

	return signed, nil
}

// ValidateFlowToken checks the token and returns the user it was issued to.
func (s *jwtService) ValidateFlowToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.flowSecret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.WithStack(domainerrors.ErrFlowTokenInvalid)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrFlowTokenInvalid)
	}

	if tokenType, _ := claims["type"].(string); tokenType != "flow" {
		return "", errors.WithStack(domainerrors.ErrFlowTokenInvalid)
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return "", errors.WithStack(domainerrors.ErrFlowTokenInvalid)
	}

	return uid, nil
}
