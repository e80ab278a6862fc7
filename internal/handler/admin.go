package handler

import (
	"net/http"
	"strconv"
	"time"

	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const maxDeadLetterPage = 500

// AdminHandler exposes queue and rollup maintenance
type AdminHandler struct {
	analytics   service.AnalyticsServiceInterface
	deadLetters service.DeadLetterQueueInterface
}

// NewAdminHandler creates a new AdminHandler. deadLetters may be nil when the
// broker keeps its own dead-letter topic.
func NewAdminHandler(analytics service.AnalyticsServiceInterface, deadLetters service.DeadLetterQueueInterface) *AdminHandler {
	return &AdminHandler{
		analytics:   analytics,
		deadLetters: deadLetters,
	}
}

// ListDeadLetters handles GET /api/v1/admin/dead-letters
// @Summary List dead-lettered click events
// @Tags admin
// @Produce json
// @Param limit query int false "Maximum entries (default 100)"
// @Success 200 {object} Response{data=[]mq.DeadLetter}
// @Failure 501 {object} ErrorResponse
// @Router /api/v1/admin/dead-letters [get]
func (h *AdminHandler) ListDeadLetters(c *gin.Context) {
	if !h.requireQueue(c) {
		return
	}

	limit := 100
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			badRequest(c, "Invalid limit")
			return
		}
		limit = min(n, maxDeadLetterPage)
	}

	letters, err := h.deadLetters.DeadLetters(c.Request.Context(), limit)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, letters)
}

// RequeueDeadLetter handles POST /api/v1/admin/dead-letters/:id/requeue
// @Summary Requeue a dead-lettered click event with a fresh set of attempts
// @Tags admin
// @Param id path string true "Job handle"
// @Success 200 {object} Response
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/dead-letters/{id}/requeue [post]
func (h *AdminHandler) RequeueDeadLetter(c *gin.Context) {
	if !h.requireQueue(c) {
		return
	}

	handle := c.Param("id")
	if err := h.deadLetters.RequeueDeadLetter(c.Request.Context(), handle); err != nil {
		fail(c, err)
		return
	}

	log.Info().Str("handle", handle).Msg("Dead letter requeued")
	success(c, http.StatusOK, nil)
}

// RebuildRollups handles POST /api/v1/admin/links/:shortCode/rebuild
// @Summary Recompute the rollups of one UTC day
// @Tags admin
// @Param shortCode path string true "Short code"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} Response
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/admin/links/{shortCode}/rebuild [post]
func (h *AdminHandler) RebuildRollups(c *gin.Context) {
	day, err := time.Parse(model.DateLayout, c.Query("date"))
	if err != nil {
		badRequest(c, "Invalid date: expected "+model.DateLayout)
		return
	}

	if err := h.analytics.RebuildDay(c.Request.Context(), c.Param("shortCode"), day); err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"date": day.Format(model.DateLayout)})
}

func (h *AdminHandler) requireQueue(c *gin.Context) bool {
	if h.deadLetters != nil {
		return true
	}
	c.JSON(http.StatusNotImplemented, ErrorResponse{
		Code:    http.StatusNotImplemented,
		Message: "Dead letters are kept by the message broker",
	})
	return false
}
