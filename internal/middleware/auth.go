package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/platform/logging"
)

// apiKeyHeader carries the pre-shared key credential.
const apiKeyHeader = "X-API-Key"

// ReviewerAuth guards the review surface. It hands both credential headers to
// the access controller and responds with a uniform 401 on failure, never
// hinting which credential was tried or why it failed.
func ReviewerAuth(authSvc portssvc.AuthSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := authSvc.Authenticate(c.Request.Context(),
			c.GetHeader("Authorization"),
			c.GetHeader(apiKeyHeader),
		)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		logger := logging.FromCtx(c.Request.Context()).With(
			slog.String("user_id", principal.UserID),
			slog.String("auth_method", principal.Method),
		)
		ctx := context.WithValue(c.Request.Context(), principalKey, principal)
		c.Request = c.Request.WithContext(logging.WithLogger(ctx, logger))

		c.Next()
	}
}
