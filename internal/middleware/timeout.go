package middleware

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/i18n"
)

// Timeout puts a deadline on the request context. Storage calls observe it
// and return early; if the handler then wrote nothing the request is answered
// with 504. Handlers run on the serving goroutine, so there is no write race
// with the timeout response.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			Abort(c, http.StatusGatewayTimeout, i18n.ErrKeyTimeout)
		}
	}
}
