package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/domain/dto"
	"github.com/guttosm/salinity-service/internal/i18n"
)

// Abort ends the chain with the error envelope for status, its message
// translated from key into the request's language.
func Abort(c *gin.Context, status int, key string) {
	AbortWith(c, status, dto.NewError(status, i18n.Message(c, key)))
}

// AbortWith ends the chain with resp stamped with the request ID.
func AbortWith(c *gin.Context, status int, resp dto.ErrorResponse) {
	c.AbortWithStatusJSON(status, resp.WithRequestID(GetRequestID(c)))
}

// ErrorHandler logs errors handlers attached with c.Error, at a level that
// follows the response status, and answers 500 when nothing was written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		if !c.Writer.Written() {
			Abort(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
		}
		RequestLog(c).WithLevel(levelForStatus(c.Writer.Status())).
			Err(c.Errors.Last().Err).
			Int("errors", len(c.Errors)).
			Str("route", c.FullPath()).
			Msg("request failed")
	}
}

// Recovery turns a handler panic into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		RequestLog(c).Error().Interface("panic", recovered).Str("path", c.FullPath()).Msg("handler panicked")
		Abort(c, http.StatusInternalServerError, i18n.ErrKeyInternalError)
	})
}
