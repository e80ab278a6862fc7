package handler

import (
	"net/http"

	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
)

// OwnerHeader carries the owner id set by the upstream auth layer
const OwnerHeader = "X-Owner-ID"

// LinkHandler handles short link management
type LinkHandler struct {
	service service.ShortLinkServiceInterface
}

// NewLinkHandler creates a new LinkHandler
func NewLinkHandler(service service.ShortLinkServiceInterface) *LinkHandler {
	return &LinkHandler{service: service}
}

// Create handles POST /api/v1/links
// @Summary Create a short link
// @Description Creates a short link with an optional expiry, click cap and password
// @Tags links
// @Accept json
// @Produce json
// @Param X-Owner-ID header string false "Owner id"
// @Param request body model.CreateLinkRequest true "Create request"
// @Success 201 {object} Response{data=model.CreateLinkResponse}
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/v1/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	var req model.CreateLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request: "+err.Error())
		return
	}
	req.OwnerID = c.GetHeader(OwnerHeader)

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusCreated, resp)
}

// Delete handles DELETE /api/v1/links/:shortCode
// @Summary Delete a short link
// @Description Deletes a link owned by the caller. Its clicks and rollups are kept.
// @Tags links
// @Param X-Owner-ID header string false "Owner id"
// @Param shortCode path string true "Short code"
// @Success 200 {object} Response
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/links/{shortCode} [delete]
func (h *LinkHandler) Delete(c *gin.Context) {
	shortCode := c.Param("shortCode")

	if err := h.service.Delete(c.Request.Context(), shortCode, c.GetHeader(OwnerHeader)); err != nil {
		fail(c, err)
		return
	}

	success(c, http.StatusOK, nil)
}
