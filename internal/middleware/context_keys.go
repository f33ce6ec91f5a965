package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/meridianfs/client_onboarding_app/internal/core/domain"
)

// contextKey prevents collisions with other context values.
type contextKey string

const principalKey = contextKey("principal")

// GetPrincipalFromContext retrieves the authenticated principal set by
// ReviewerAuth. The boolean reports whether authentication ran at all.
func GetPrincipalFromContext(c *gin.Context) (*domain.Principal, bool) {
	val := c.Request.Context().Value(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*domain.Principal)
	if !ok {
		return nil, false
	}
	return principal, true
}
