package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/meridianfs/client_onboarding_app/internal/apperrors"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
	portsrepo "github.com/meridianfs/client_onboarding_app/internal/core/ports/repositories"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/models"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
	"github.com/meridianfs/client_onboarding_app/internal/utils"
	"github.com/meridianfs/client_onboarding_app/pkg/config"
)

// googleTokenValidator verifies a Google ID token against an audience and
// returns the verified claims. Swappable in tests.
type googleTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// authService implements portssvc.AuthSvc. Both credential checks funnel every
// failure into the same apperrors.ErrUnauthorized so a caller cannot probe
// which part of a credential was wrong.
type authService struct {
	userRepo       portsrepo.ReviewerRepository
	apiKeys        portssvc.APIKeySvc
	cfg            *config.Config
	validateGoogle googleTokenValidator
}

// NewAuthService wires the access controller for the review surface.
func NewAuthService(userRepo portsrepo.ReviewerRepository, apiKeys portssvc.APIKeySvc, cfg *config.Config) portssvc.AuthSvc {
	return &authService{
		userRepo:       userRepo,
		apiKeys:        apiKeys,
		cfg:            cfg,
		validateGoogle: idtoken.Validate,
	}
}

// Authenticate tries the bearer token first, then the API key. Exactly one
// method has to succeed; both absent or both invalid is a uniform 401.
func (s *authService) Authenticate(ctx context.Context, authorizationHeader, apiKeyHeader string) (*domain.Principal, error) {
	if authorizationHeader != "" {
		principal, err := s.authenticateBearer(ctx, authorizationHeader)
		if err == nil {
			return principal, nil
		}
		logging.FromCtx(ctx).Debug("Bearer authentication failed", slog.String("error", err.Error()))
	}

	if apiKeyHeader != "" {
		userID, err := s.apiKeys.ValidateKey(ctx, apiKeyHeader)
		if err == nil {
			return &domain.Principal{UserID: userID, Method: domain.AuthMethodAPIKey}, nil
		}
		logging.FromCtx(ctx).Debug("API key authentication failed", slog.String("error", err.Error()))
	}

	return nil, apperrors.ErrUnauthorized
}

func (s *authService) authenticateBearer(ctx context.Context, authorizationHeader string) (*domain.Principal, error) {
	tokenString, ok := strings.CutPrefix(authorizationHeader, "Bearer ")
	if !ok {
		return nil, fmt.Errorf("%w: malformed authorization header", apperrors.ErrUnauthorized)
	}

	claims, err := utils.ParseAndValidateJWT(tokenString, s.cfg.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}

	// A valid signature is not enough: the subject must still be an active
	// reviewer, so deactivating a user invalidates their outstanding tokens.
	user, err := s.userRepo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: user is inactive", apperrors.ErrUnauthorized)
	}

	return &domain.Principal{UserID: user.UserID, Method: domain.AuthMethodBearer}, nil
}

// LoginWithPassword exchanges an email/password pair for a bearer token.
func (s *authService) LoginWithPassword(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	if !user.IsActive || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	s.touchLastLogin(ctx, user)
	return s.CreateToken(ctx, user.UserID)
}

// LoginWithGoogleIDToken maps a verified Google identity onto an existing
// active reviewer user. There is no self-signup path: an unknown email is a
// plain 401.
func (s *authService) LoginWithGoogleIDToken(ctx context.Context, rawIDToken string) (string, time.Time, error) {
	if s.cfg.GoogleClientID == "" {
		return "", time.Time{}, fmt.Errorf("%w: google sign-in is not configured", apperrors.ErrUnauthorized)
	}

	payload, err := s.validateGoogle(ctx, rawIDToken, s.cfg.GoogleClientID)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", apperrors.ErrUnauthorized, err.Error())
	}
	email, _ := payload.Claims["email"].(string)
	if verified, _ := payload.Claims["email_verified"].(bool); !verified || email == "" {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return "", time.Time{}, apperrors.ErrUnauthorized
	}

	s.touchLastLogin(ctx, user)
	return s.CreateToken(ctx, user.UserID)
}

// CreateToken signs a bearer token for the given reviewer user.
func (s *authService) CreateToken(_ context.Context, userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(userID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// touchLastLogin records the login timestamp best-effort.
func (s *authService) touchLastLogin(ctx context.Context, user *models.ReviewerUser) {
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, time.Now()); err != nil {
		logging.FromCtx(ctx).Warn("Failed to update last login",
			slog.String("user_id", user.UserID),
			slog.String("error", err.Error()),
		)
	}
}
