package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

type memorySink struct {
	mu      sync.Mutex
	full    bool
	entries []*model.LogEntry
}

func (s *memorySink) Enqueue(e *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.full {
		return false
	}
	s.entries = append(s.entries, e)
	return true
}

func serveWithSink(t *testing.T, sink LogSink, handler gin.HandlerFunc) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), APIKeyAuth(map[string]bool{"lab-key": true}), AccessLog(sink))
	router.POST("/api/salinity", handler)

	req := httptest.NewRequest(http.MethodPost, "/api/salinity", nil)
	req.Header.Set(RequestIDHeader, "run-9")
	req.Header.Set(APIKeyHeader, "lab-key")
	req.Header.Set("User-Agent", "ctd-uploader/2.1")
	router.ServeHTTP(httptest.NewRecorder(), req)
}

func TestAccessLog_QueuesRequestEntry(t *testing.T) {
	tests := []struct {
		name    string
		handler gin.HandlerFunc
		level   string
		status  int
		err     string
	}{
		{
			name:    "success",
			handler: func(c *gin.Context) { c.Status(http.StatusOK) },
			level:   "info",
			status:  http.StatusOK,
		},
		{
			name:    "client error",
			handler: func(c *gin.Context) { c.Status(http.StatusBadRequest) },
			level:   "warn",
			status:  http.StatusBadRequest,
		},
		{
			name: "server error keeps the handler error",
			handler: func(c *gin.Context) {
				_ = c.Error(errors.New("history write failed"))
				c.Status(http.StatusInternalServerError)
			},
			level:  "error",
			status: http.StatusInternalServerError,
			err:    "history write failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &memorySink{}
			serveWithSink(t, sink, tt.handler)

			require.Len(t, sink.entries, 1)
			e := sink.entries[0]
			assert.Equal(t, "http request", e.Message)
			assert.Equal(t, tt.level, e.Level)
			assert.Equal(t, tt.status, e.StatusCode)
			assert.Equal(t, tt.err, e.Error)
			assert.Equal(t, "run-9", e.RequestID)
			assert.Equal(t, "/api/salinity", e.Path)
			assert.Equal(t, "ctd-uploader/2.1", e.UserAgent)
			assert.Len(t, e.Fields["api_key_id"], 16)
			assert.False(t, e.Timestamp.IsZero())
		})
	}
}

func TestAudit(t *testing.T) {
	t.Run("entry carries request identity", func(t *testing.T) {
		sink := &memorySink{}
		serveWithSink(t, sink, func(c *gin.Context) {
			Audit(c, (&model.LogEntry{
				Message:    "Salinity calculation requested",
				ActionType: model.ActionCalculate,
			}).Set("sp", 35.0))
			c.Status(http.StatusOK)
		})

		require.Len(t, sink.entries, 2)
		audit := sink.entries[0]
		assert.Equal(t, model.ActionCalculate, audit.ActionType)
		assert.Equal(t, "info", audit.Level)
		assert.Equal(t, "run-9", audit.RequestID)
		assert.Equal(t, 35.0, audit.Fields["sp"])
		assert.NotEmpty(t, audit.Fields["api_key_id"])
	})

	t.Run("failed action is stored at error level", func(t *testing.T) {
		sink := &memorySink{}
		serveWithSink(t, sink, func(c *gin.Context) {
			Audit(c, &model.LogEntry{ActionType: model.ActionUpdateAssumptions, Error: "store down"})
			c.Status(http.StatusServiceUnavailable)
		})

		require.Len(t, sink.entries, 2)
		assert.Equal(t, "error", sink.entries[0].Level)
	})

	t.Run("full sink does not fail the request", func(t *testing.T) {
		sink := &memorySink{full: true}
		serveWithSink(t, sink, func(c *gin.Context) {
			Audit(c, &model.LogEntry{ActionType: model.ActionSummarize})
			c.Status(http.StatusOK)
		})
		assert.Empty(t, sink.entries)
	})

	t.Run("no sink is a no-op", func(t *testing.T) {
		serveWithSink(t, nil, func(c *gin.Context) {
			Audit(c, &model.LogEntry{ActionType: model.ActionSummarize})
			c.Status(http.StatusOK)
		})
	})
}
