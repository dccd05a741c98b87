package service

// TokenService issues and validates session-scoped flow tokens. A flow token
// marks that the user reached onboarding through legitimate in-app
// navigation, so a direct or refreshed URL hit can be redirected to the
// entry point instead.
type TokenService interface {
	// IssueFlowToken creates a short-lived token bound to the given uid.
	IssueFlowToken(uid string) (string, error)

	// ValidateFlowToken verifies a token and returns the uid it was issued for.
	ValidateFlowToken(token string) (string, error)
}
