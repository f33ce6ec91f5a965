package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"

	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/middleware"
)

// AuthHandler serves reviewer login. There is no self-signup route: reviewer
// accounts are provisioned out of band.
type AuthHandler struct {
	authService portssvc.AuthSvc
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvc) *AuthHandler {
	return &AuthHandler{authService: as}
}

func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc) {
	h := NewAuthHandler(authService)

	// Tight limit on credential guessing, separate from the intake limiter.
	loginLimiter, err := middleware.NewIntakeLimiter("5-M")
	if err != nil {
		panic(err)
	}
	limitMiddleware := limitergin.NewMiddleware(loginLimiter)

	auth := r.Group("/api/v1/auth", limitMiddleware)
	{
		auth.POST("/login", h.Login)
		auth.POST("/google", h.GoogleLogin)
	}
}

// Login godoc
// @Summary Reviewer login
// @Description Exchanges an email/password pair for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresAt, err := h.authService.LoginWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}

// GoogleLogin godoc
// @Summary Reviewer login via Google
// @Description Verifies a Google ID token and maps its email onto an existing reviewer account.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleVerifyRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req dto.GoogleVerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	token, expiresAt, err := h.authService.LoginWithGoogleIDToken(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, ExpiresAt: expiresAt})
}
