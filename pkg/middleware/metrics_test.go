package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/:shortCode", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "https://example.com")
	})

	labels := prometheus.Labels{"method": "GET", "route": "/:shortCode", "status": "302"}
	before := counterValue(httpRequestsTotal.With(labels))

	for _, code := range []string{"/abc1234", "/xyz9876"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", code, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
	}

	assert.Equal(t, before+2, counterValue(httpRequestsTotal.With(labels)))
	assert.Zero(t, gaugeValue(httpInFlight))
}

func TestMetrics_UnmatchedRoute(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())

	labels := prometheus.Labels{"method": "GET", "route": "unmatched", "status": "404"}
	before := counterValue(httpRequestsTotal.With(labels))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/nowhere/at/all", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, before+1, counterValue(httpRequestsTotal.With(labels)))
}

func counterValue(c prometheus.Counter) float64 {
	var m dto.Metric
	_ = c.Write(&m)
	return m.GetCounter().GetValue()
}

func gaugeValue(g prometheus.Gauge) float64 {
	var m dto.Metric
	_ = g.Write(&m)
	return m.GetGauge().GetValue()
}
