package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"linkpulse/internal/mocks"
	"linkpulse/internal/model"
	"linkpulse/internal/mq"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdminRouter(h *AdminHandler) *gin.Engine {
	router := gin.New()
	admin := router.Group("/api/v1/admin")
	admin.GET("/dead-letters", h.ListDeadLetters)
	admin.POST("/dead-letters/:id/requeue", h.RequeueDeadLetter)
	admin.POST("/links/:shortCode/rebuild", h.RebuildRollups)
	return router
}

func TestAdminHandler_ListDeadLetters(t *testing.T) {
	t.Run("default limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDLQ := mocks.NewMockDeadLetterQueueInterface(ctrl)
		router := newTestAdminRouter(NewAdminHandler(nil, mockDLQ))

		mockDLQ.EXPECT().DeadLetters(gomock.Any(), 100).Return([]mq.DeadLetter{
			{Handle: "h1", Event: &model.ClickEvent{EventID: "e1"}, Attempts: 3, LastError: "db down"},
		}, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/dead-letters", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Data []mq.DeadLetter `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Data, 1)
		assert.Equal(t, "e1", resp.Data[0].Event.EventID)
		assert.Equal(t, 3, resp.Data[0].Attempts)
	})

	t.Run("limit is capped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockDLQ := mocks.NewMockDeadLetterQueueInterface(ctrl)
		router := newTestAdminRouter(NewAdminHandler(nil, mockDLQ))

		mockDLQ.EXPECT().DeadLetters(gomock.Any(), maxDeadLetterPage).Return(nil, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/dead-letters?limit=100000", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newTestAdminRouter(NewAdminHandler(nil, mocks.NewMockDeadLetterQueueInterface(ctrl)))

		for _, limit := range []string{"0", "-1", "ten"} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/api/v1/admin/dead-letters?limit="+limit, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code, limit)
		}
	})

	t.Run("broker-managed dead letters", func(t *testing.T) {
		router := newTestAdminRouter(NewAdminHandler(nil, nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/v1/admin/dead-letters", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotImplemented, w.Code)
	})
}

func TestAdminHandler_RequeueDeadLetter(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"requeued", nil, http.StatusOK},
		{"unknown handle", mq.ErrJobNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockDLQ := mocks.NewMockDeadLetterQueueInterface(ctrl)
			router := newTestAdminRouter(NewAdminHandler(nil, mockDLQ))

			mockDLQ.EXPECT().RequeueDeadLetter(gomock.Any(), "job-1").Return(tt.err)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/v1/admin/dead-letters/job-1/requeue", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestAdminHandler_RebuildRollups(t *testing.T) {
	t.Run("rebuilds the requested day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		router := newTestAdminRouter(NewAdminHandler(mockAnalytics, nil))

		mockAnalytics.EXPECT().
			RebuildDay(gomock.Any(), "abc1234", time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)).
			Return(nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/admin/links/abc1234/rebuild?date=2024-03-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"date":"2024-03-10"`)
	})

	t.Run("missing date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		router := newTestAdminRouter(NewAdminHandler(mocks.NewMockAnalyticsServiceInterface(ctrl), nil))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/admin/links/abc1234/rebuild", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown link", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAnalytics := mocks.NewMockAnalyticsServiceInterface(ctrl)
		router := newTestAdminRouter(NewAdminHandler(mockAnalytics, nil))

		mockAnalytics.EXPECT().RebuildDay(gomock.Any(), "nope1234", gomock.Any()).Return(service.ErrNotFound)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/v1/admin/links/nope1234/rebuild?date=2024-03-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
