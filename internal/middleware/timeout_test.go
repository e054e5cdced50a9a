package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	waitForDeadline := func(c *gin.Context) {
		<-c.Request.Context().Done()
		_ = c.Error(c.Request.Context().Err())
	}

	tests := []struct {
		name    string
		limit   time.Duration
		handler gin.HandlerFunc
		status  int
	}{
		{
			name:    "fast handler unaffected",
			limit:   time.Second,
			handler: func(c *gin.Context) { c.Status(http.StatusCreated) },
			status:  http.StatusCreated,
		},
		{
			name:    "store call past deadline answers 504",
			limit:   10 * time.Millisecond,
			handler: waitForDeadline,
			status:  http.StatusGatewayTimeout,
		},
		{
			name:  "response written before deadline is kept",
			limit: 10 * time.Millisecond,
			handler: func(c *gin.Context) {
				c.Status(http.StatusOK)
				c.Writer.WriteHeaderNow()
				<-c.Request.Context().Done()
			},
			status: http.StatusOK,
		},
		{
			name:  "zero disables the deadline",
			limit: 0,
			handler: func(c *gin.Context) {
				_, hasDeadline := c.Request.Context().Deadline()
				assert.False(t, hasDeadline)
				c.Status(http.StatusOK)
			},
			status: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID(), ErrorHandler(), Timeout(tt.limit))
			router.POST("/api/salinity", tt.handler)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/salinity", nil))

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusGatewayTimeout {
				assert.Contains(t, w.Body.String(), `"error":"timeout"`)
			}
		})
	}
}

func TestTimeout_CancelledClientIsNotATimeout(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(time.Second))
	router.POST("/api/salinity", func(c *gin.Context) {})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/salinity", nil).WithContext(ctx))

	assert.NotEqual(t, http.StatusGatewayTimeout, w.Code)
}
