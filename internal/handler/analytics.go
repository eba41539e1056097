package handler

import (
	"errors"
	"net/http"

	"clickgate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// AnalyticsHandler serves per-link analytics and workspace reports
type AnalyticsHandler struct {
	reporter service.ReporterInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(reporter service.ReporterInterface) *AnalyticsHandler {
	return &AnalyticsHandler{reporter: reporter}
}

// LinkAnalytics handles GET /api/v1/analytics/:shortCode
// @Summary Get analytics for a short link
// @Description Returns click, device, browser, location and daily statistics
// @Tags analytics
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response{data=model.Analytics}
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/analytics/{shortCode} [get]
func (h *AnalyticsHandler) LinkAnalytics(c *gin.Context) {
	shortCode := c.Param("shortCode")

	a, err := h.reporter.LinkAnalytics(c.Request.Context(), shortCode)
	if errors.Is(err, service.ErrLinkNotFound) {
		fail(c, http.StatusNotFound, "Short link not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to get analytics")
		fail(c, http.StatusInternalServerError, "Failed to get analytics")
		return
	}

	success(c, http.StatusOK, a)
}

// WorkspaceReport handles GET /api/v1/workspaces/:workspaceID/report
// @Summary Get the analytics report of a workspace
// @Tags analytics
// @Produce json
// @Param workspaceID path string true "Workspace ID"
// @Success 200 {object} Response{data=model.WorkspaceReport}
// @Router /api/v1/workspaces/{workspaceID}/report [get]
func (h *AnalyticsHandler) WorkspaceReport(c *gin.Context) {
	workspaceID := c.Param("workspaceID")

	rep, err := h.reporter.WorkspaceReport(c.Request.Context(), workspaceID)
	if err != nil {
		log.Error().Err(err).Str("workspace_id", workspaceID).Msg("Failed to build workspace report")
		fail(c, http.StatusInternalServerError, "Failed to build workspace report")
		return
	}

	success(c, http.StatusOK, rep)
}
