package handler

import (
	"fmt"
	"net/http"
	"time"

	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler serves link analytics
type AnalyticsHandler struct {
	analytics service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new AnalyticsHandler
func NewAnalyticsHandler(analytics service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// GetAnalytics handles GET /api/v1/analytics/:shortCode
// @Summary Get analytics for a short link
// @Description Returns the total clicks, the daily and hourly rollups and the latest 100 clicks
// @Tags analytics
// @Produce json
// @Param shortCode path string true "Short code"
// @Param from query string false "Start date (YYYY-MM-DD or RFC3339)"
// @Param to query string false "End date, exclusive (YYYY-MM-DD or RFC3339)"
// @Success 200 {object} Response{data=model.AnalyticsResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/analytics/{shortCode} [get]
func (h *AnalyticsHandler) GetAnalytics(c *gin.Context) {
	var query model.AnalyticsQuery
	var err error

	if query.From, err = parseTimeParam(c.Query("from")); err != nil {
		badRequest(c, "Invalid from: "+err.Error())
		return
	}
	if query.To, err = parseTimeParam(c.Query("to")); err != nil {
		badRequest(c, "Invalid to: "+err.Error())
		return
	}
	if !query.From.IsZero() && !query.To.IsZero() && !query.From.Before(query.To) {
		badRequest(c, "Invalid range: from must be before to")
		return
	}

	resp, err := h.analytics.GetAnalyticsByCode(c.Request.Context(), c.Param("shortCode"), query)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, resp)
}

// parseTimeParam accepts a UTC date or an RFC3339 instant. Empty means unbounded.
func parseTimeParam(v string) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(model.DateLayout, v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected %s or RFC3339, got %q", model.DateLayout, v)
	}
	return t.UTC(), nil
}
