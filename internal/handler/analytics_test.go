package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clickgate/internal/mocks"
	"clickgate/internal/model"
	"clickgate/internal/service"
)

func newTestAnalyticsRouter(h *AnalyticsHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/v1/analytics/:shortCode", h.LinkAnalytics)
	router.GET("/api/v1/workspaces/:workspaceID/report", h.WorkspaceReport)
	return router
}

func TestAnalyticsHandler_LinkAnalytics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporterInterface(ctrl)
	router := newTestAnalyticsRouter(NewAnalyticsHandler(mockReporter))

	t.Run("get analytics successfully", func(t *testing.T) {
		a := model.NewAnalytics("ABCD", "ws-1")
		a.TotalClicks = 3
		a.DeviceStats.Mobile = 2
		a.DeviceStats.Desktop = 1
		mockReporter.EXPECT().LinkAnalytics(gomock.Any(), "ABCD").Return(a, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/analytics/ABCD", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Response
			Data model.Analytics `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(3), resp.Data.TotalClicks)
		assert.Equal(t, int64(2), resp.Data.DeviceStats.Mobile)
	})

	t.Run("analytics for non-existent short link", func(t *testing.T) {
		mockReporter.EXPECT().LinkAnalytics(gomock.Any(), "NOPE").Return(nil, service.ErrLinkNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/analytics/NOPE", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("analytics with store error", func(t *testing.T) {
		mockReporter.EXPECT().LinkAnalytics(gomock.Any(), "ABCD").Return(nil, errors.New("analytics error"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/analytics/ABCD", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAnalyticsHandler_WorkspaceReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReporter := mocks.NewMockReporterInterface(ctrl)
	router := newTestAnalyticsRouter(NewAnalyticsHandler(mockReporter))

	t.Run("report", func(t *testing.T) {
		mockReporter.EXPECT().WorkspaceReport(gomock.Any(), "ws-1").Return(&model.WorkspaceReport{
			WorkspaceID:           "ws-1",
			TotalLinks:            2,
			TotalClicks:           6,
			CTR:                   16.67,
			MostActiveWeekday:     3,
			MostActiveWeekdayName: "Wednesday",
			TopLocations:          []model.LocationShare{{Country: "Japan", Clicks: 4, Percent: 66.67}},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/workspaces/ws-1/report", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Response
			Data model.WorkspaceReport `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(6), resp.Data.TotalClicks)
		assert.Equal(t, 16.67, resp.Data.CTR)
		assert.Equal(t, "Wednesday", resp.Data.MostActiveWeekdayName)
		require.Len(t, resp.Data.TopLocations, 1)
		assert.Equal(t, "Japan", resp.Data.TopLocations[0].Country)
	})

	t.Run("report failure", func(t *testing.T) {
		mockReporter.EXPECT().WorkspaceReport(gomock.Any(), "ws-2").Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/workspaces/ws-2/report", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
