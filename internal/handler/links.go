package handler

import (
	"net/http"

	"clickgate/internal/model"
	"clickgate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LinkHandler manages the link registry
type LinkHandler struct {
	service service.LinkServiceInterface
	domain  string
}

// NewLinkHandler creates a new LinkHandler serving short links under domain
func NewLinkHandler(service service.LinkServiceInterface, domain string) *LinkHandler {
	return &LinkHandler{service: service, domain: domain}
}

// Register handles POST /api/v1/links
// @Summary Register a short link
// @Description Registers a link with optional custom code, password, transfer limit and schedule
// @Tags links
// @Accept json
// @Produce json
// @Param request body model.CreateLinkRequest true "Create link request"
// @Success 201 {object} Response{data=model.LinkResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/links [post]
func (h *LinkHandler) Register(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	link, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		status := statusForError(err)
		if status == http.StatusInternalServerError {
			log.Error().Err(err).Str("workspace_id", req.WorkspaceID).Msg("Failed to register link")
			fail(c, status, "Failed to register link")
			return
		}
		fail(c, status, err.Error())
		return
	}

	success(c, http.StatusCreated, model.NewLinkResponse(link, h.domain))
}

// Get handles GET /api/v1/links/:shortCode
// @Summary Get a short link
// @Tags links
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response{data=model.LinkResponse}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/links/{shortCode} [get]
func (h *LinkHandler) Get(c *gin.Context) {
	link, err := h.service.Get(c.Request.Context(), c.Param("shortCode"))
	if err != nil {
		h.fail(c, err, "Failed to get link")
		return
	}
	success(c, http.StatusOK, model.NewLinkResponse(link, h.domain))
}

// SetActive handles PATCH /api/v1/links/:shortCode/active
// @Summary Activate or deactivate a short link
// @Tags links
// @Accept json
// @Produce json
// @Param shortCode path string true "Short code"
// @Param request body model.SetActiveRequest true "Active flag"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/links/{shortCode}/active [patch]
func (h *LinkHandler) SetActive(c *gin.Context) {
	var req model.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	if err := h.service.SetActive(c.Request.Context(), c.Param("shortCode"), *req.Active); err != nil {
		h.fail(c, err, "Failed to update link")
		return
	}
	success(c, http.StatusOK, gin.H{"active": *req.Active})
}

// Delete handles DELETE /api/v1/links/:shortCode
// @Summary Delete a short link and its analytics
// @Tags links
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/links/{shortCode} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("shortCode")); err != nil {
		h.fail(c, err, "Failed to delete link")
		return
	}
	success(c, http.StatusOK, nil)
}

func (h *LinkHandler) fail(c *gin.Context, err error, message string) {
	status := statusForError(err)
	if status == http.StatusNotFound {
		fail(c, status, "Short link not found")
		return
	}
	log.Error().Err(err).Str("short_code", c.Param("shortCode")).Msg(message)
	fail(c, status, message)
}
