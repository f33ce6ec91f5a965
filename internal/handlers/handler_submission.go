package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/meridianfs/client_onboarding_app/internal/core/ports/services"
	"github.com/meridianfs/client_onboarding_app/internal/dto"
	"github.com/meridianfs/client_onboarding_app/internal/middleware"
)

// SubmissionHandler serves the public intake surface. These routes are
// unauthenticated by design and sit behind the intake rate limiter.
type SubmissionHandler struct {
	intakeService portssvc.IntakeSvc
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(is portssvc.IntakeSvc) *SubmissionHandler {
	return &SubmissionHandler{intakeService: is}
}

func registerSubmissionRoutes(rg *gin.RouterGroup, intakeService portssvc.IntakeSvc) {
	h := NewSubmissionHandler(intakeService)

	rg.POST("/applications/draft", h.SaveDraft)
	rg.POST("/applications/submit", h.Submit)
}

// SaveDraft godoc
// @Summary Save an in-progress application
// @Description Creates a draft on the first call and returns a session token; subsequent calls with the draft ID and token overwrite the draft.
// @Tags intake
// @Accept json
// @Produce json
// @Param draft body dto.SaveDraftRequest true "Draft state"
// @Success 200 {object} dto.SaveDraftResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /intake/applications/draft [post]
func (h *SubmissionHandler) SaveDraft(c *gin.Context) {
	var req dto.SaveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.intakeService.SaveDraft(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary Submit a completed application
// @Description Validates the full application and, if clean, persists it and returns the reference number. Field violations come back as 422.
// @Tags intake
// @Accept json
// @Produce json
// @Param application body dto.SubmitApplicationRequest true "Completed application"
// @Success 201 {object} dto.SubmissionReceipt
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} dto.ValidationFailedResponse
// @Router /intake/applications/submit [post]
func (h *SubmissionHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	receipt, violations, err := h.intakeService.Submit(c.Request.Context(), req, middleware.RequestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if len(violations) > 0 {
		c.JSON(http.StatusUnprocessableEntity, dto.ValidationFailedResponse{
			Error:      "validation failed",
			Violations: violations,
		})
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
