package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/middleware"
)

// ReviewHandler serves the authenticated review surface.
type ReviewHandler struct {
	reviewService portssvc.ReviewSvc
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(rs portssvc.ReviewSvc) *ReviewHandler {
	return &ReviewHandler{reviewService: rs}
}

func registerReviewRoutes(rg *gin.RouterGroup, reviewService portssvc.ReviewSvc) {
	h := NewReviewHandler(reviewService)

	apps := rg.Group("/applications")
	{
		apps.GET("", h.ListApplications)
		apps.GET("/:applicationID", h.GetApplication)
		apps.POST("/:applicationID/actions", h.PerformAction)
		apps.GET("/:applicationID/audit", h.GetAuditTrail)
	}
}

// ListApplications godoc
// @Summary List submitted applications
// @Description Returns submitted applications newest-first with summary fields only. No protected fields are decrypted for this view.
// @Tags review
// @Produce json
// @Success 200 {object} dto.ListApplicationsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications [get]
func (h *ReviewHandler) ListApplications(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	resp, err := h.reviewService.ListApplications(c.Request.Context(), principal.UserID, middleware.RequestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetApplication godoc
// @Summary Get one application in full
// @Description Returns the decrypted application plus reviewer notes. The access is recorded in the audit trail.
// @Tags review
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.ApplicationDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{applicationID} [get]
func (h *ReviewHandler) GetApplication(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	resp, err := h.reviewService.GetApplication(c.Request.Context(), principal.UserID, c.Param("applicationID"), middleware.RequestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PerformAction godoc
// @Summary Perform a review action
// @Description Executes one action from the closed set: approve, reject, update_status, add_notes, mark_reviewed, resend_notification.
// @Tags review
// @Accept json
// @Produce json
// @Param applicationID path string true "Application ID"
// @Param action body dto.ReviewActionRequest true "Review action"
// @Success 200 {object} dto.ReviewActionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{applicationID}/actions [post]
func (h *ReviewHandler) PerformAction(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	var req dto.ReviewActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.reviewService.PerformAction(c.Request.Context(), principal.UserID, c.Param("applicationID"), req, middleware.RequestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetAuditTrail godoc
// @Summary Get the audit trail for an application
// @Description Returns every recorded access and action for the application, newest first. Reading the trail is itself recorded.
// @Tags review
// @Produce json
// @Param applicationID path string true "Application ID"
// @Success 200 {object} dto.AuditTrailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /applications/{applicationID}/audit [get]
func (h *ReviewHandler) GetAuditTrail(c *gin.Context) {
	principal, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	resp, err := h.reviewService.GetAuditTrail(c.Request.Context(), principal.UserID, c.Param("applicationID"), middleware.RequestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
