package middleware

import (
	"errors"
	"net"
	"net/http"
	"os"
	"runtime/debug"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
)

var httpPanics = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_panics_total",
		Help: "Handler panics recovered, by route",
	},
	[]string{"route"},
)

// Recovery turns a handler panic into a 500 response. A panic caused by a
// client that went away is logged without writing a response.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			route := c.FullPath()
			if route == "" {
				route = "unmatched"
			}
			httpPanics.WithLabelValues(route).Inc()

			if err, ok := rec.(error); ok && isBrokenConnection(err) {
				log.Warn().
					Err(err).
					Str("method", c.Request.Method).
					Str("path", c.Request.URL.Path).
					Msg("Client connection lost")
				c.Abort()
				return
			}

			log.Error().
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("route", route).
				Interface("error", rec).
				Bytes("stack", debug.Stack()).
				Msg("Panic recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"code":    http.StatusInternalServerError,
				"message": "Internal server error",
			})
		}()
		c.Next()
	}
}

func isBrokenConnection(err error) bool {
	var opErr *net.OpError
	if !errors.As(err, &opErr) {
		return false
	}
	var sysErr *os.SyscallError
	if errors.As(opErr, &sysErr) {
		return errors.Is(sysErr.Err, syscall.EPIPE) || errors.Is(sysErr.Err, syscall.ECONNRESET)
	}
	return false
}
