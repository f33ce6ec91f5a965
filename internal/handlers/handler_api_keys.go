package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/middleware"
)

// APIKeyHandler manages a reviewer's own pre-shared keys.
type APIKeyHandler struct {
	apiKeyService portssvc.APIKeySvc
}

// NewAPIKeyHandler creates a new APIKeyHandler.
func NewAPIKeyHandler(ks portssvc.APIKeySvc) *APIKeyHandler {
	return &APIKeyHandler{apiKeyService: ks}
}

func registerAPIKeyRoutes(rg *gin.RouterGroup, apiKeyService portssvc.APIKeySvc) {
	h := NewAPIKeyHandler(apiKeyService)

	keys := rg.Group("/apikeys")
	{
		keys.POST("", h.CreateKey)
		keys.GET("", h.ListKeys)
		keys.DELETE("/:keyID", h.RevokeKey)
	}
}

// CreateKey godoc
// @Summary Create an API key
// @Description Mints a new key for the calling reviewer. The raw key appears in this response and never again.
// @Tags apikeys
// @Accept json
// @Produce json
// @Param key body dto.CreateAPIKeyRequest true "Key name"
// @Success 201 {object} dto.CreateAPIKeyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /apikeys [post]
func (h *APIKeyHandler) CreateKey(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	rawKey, key, err := h.apiKeyService.CreateKey(c.Request.Context(), principal.UserID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateAPIKeyResponse{
		Key:            rawKey,
		APIKeyResponse: dto.ToAPIKeyResponse(*key),
	})
}

// ListKeys godoc
// @Summary List API keys
// @Description Lists the calling reviewer's keys without any secret material.
// @Tags apikeys
// @Produce json
// @Success 200 {object} dto.ListAPIKeysResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /apikeys [get]
func (h *APIKeyHandler) ListKeys(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	keys, err := h.apiKeyService.ListKeys(c.Request.Context(), principal.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListAPIKeysResponse{Keys: make([]dto.APIKeyResponse, len(keys))}
	for i, key := range keys {
		resp.Keys[i] = dto.ToAPIKeyResponse(key)
	}
	c.JSON(http.StatusOK, resp)
}

// RevokeKey godoc
// @Summary Revoke an API key
// @Description Deactivates one of the calling reviewer's keys. The key fails authentication from the next request onwards.
// @Tags apikeys
// @Produce json
// @Param keyID path string true "Key ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apikeys/{keyID} [delete]
func (h *APIKeyHandler) RevokeKey(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	if err := h.apiKeyService.RevokeKey(c.Request.Context(), principal.UserID, c.Param("keyID")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
