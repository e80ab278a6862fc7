package handler

import (
	"net/http"
	"net/url"

	"linkpulse/internal/encoder"
	"linkpulse/internal/model"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	resolver service.ResolverInterface
	codes    *encoder.Base62Encoder
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(resolver service.ResolverInterface) *RedirectHandler {
	return &RedirectHandler{
		resolver: resolver,
		codes:    encoder.NewBase62Encoder(),
	}
}

// Redirect handles GET /:shortCode
// @Summary Redirect to the destination URL
// @Description Resolves the short code, applies the link policy and records one click
// @Tags redirect
// @Param shortCode path string true "Short code"
// @Param password query string false "Link password"
// @Success 302
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /{shortCode} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")
	if !h.codes.IsValid(shortCode) {
		fail(c, service.ErrNotFound)
		return
	}

	res, err := h.resolver.Resolve(c.Request.Context(), &model.ResolveRequest{
		ShortCode:  shortCode,
		Password:   c.Query("password"),
		SourceIP:   c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
		Referrer:   c.Request.Referer(),
		RequestURL: recordedURL(c.Request.URL),
	})
	if err != nil {
		fail(c, err)
		return
	}

	// every visit must reach the server to be counted
	c.Header("Cache-Control", "no-store")
	c.Redirect(http.StatusFound, res.DestinationURL)
}

// recordedURL is the request URI kept with the click, without the password
func recordedURL(u *url.URL) string {
	q := u.Query()
	if !q.Has("password") {
		return u.RequestURI()
	}
	q.Del("password")
	cp := *u
	cp.RawQuery = q.Encode()
	return cp.RequestURI()
}
