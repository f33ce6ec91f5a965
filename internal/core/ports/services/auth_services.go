package services

import (
	"context"
	"time"

	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
)

// AuthSvc authenticates review-surface requests and issues bearer tokens.
type AuthSvc interface {
	// Authenticate resolves a request to a reviewer principal. The bearer
	// token is tried first, then the API key. Failure of both yields
	// apperrors.ErrUnauthorized with no further detail.
	Authenticate(ctx context.Context, authorizationHeader, apiKeyHeader string) (*domain.Principal, error)
	// LoginWithPassword checks an email/password pair against an active
	// reviewer user and issues a bearer token.
	LoginWithPassword(ctx context.Context, email, password string) (string, time.Time, error)
	// LoginWithGoogleIDToken validates a Google ID token and maps its verified
	// email onto an existing active reviewer user.
	LoginWithGoogleIDToken(ctx context.Context, idToken string) (string, time.Time, error)
	// CreateToken signs a bearer token for the given reviewer with the fixed
	// role claim and bounded expiry.
	CreateToken(ctx context.Context, userID string) (string, time.Time, error)
}
