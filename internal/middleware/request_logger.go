package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/salinity-service/internal/domain/model"
)

// LogSink accepts request log entries for persistence. Enqueue must not block;
// it reports false when the entry was dropped.
type LogSink interface {
	Enqueue(entry *model.LogEntry) bool
}

const logSinkKey = "log_sink"

// AccessLog writes one structured line per request and, when sink is not nil,
// queues a matching entry for storage. Handlers reach the same sink via Audit.
func AccessLog(sink LogSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		if sink != nil {
			c.Set(logSinkKey, sink)
		}

		c.Next()

		status := c.Writer.Status()
		elapsed := time.Since(start)
		level := levelForStatus(status)

		ev := RequestLog(c).WithLevel(level).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status_code", status).
			Dur("duration", elapsed).
			Str("ip", c.ClientIP())
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			ev = ev.Str("error", errs.String())
		}
		ev.Msg("http request")

		if sink == nil {
			return
		}
		entry := requestEntry(c, "http request")
		entry.Timestamp = start
		entry.Level = level.String()
		entry.StatusCode = status
		entry.Duration = elapsed.Milliseconds()
		if len(c.Errors) > 0 {
			entry.Error = c.Errors.Last().Error()
		}
		sink.Enqueue(entry)
	}
}

// Audit queues an action record carrying the request's identity. It is a
// no-op when no sink is attached. Entries with Error set are stored at error
// level.
func Audit(c *gin.Context, entry *model.LogEntry) {
	v, ok := c.Get(logSinkKey)
	if !ok {
		return
	}
	sink, ok := v.(LogSink)
	if !ok {
		return
	}

	base := requestEntry(c, entry.Message)
	entry.RequestID = base.RequestID
	entry.Method = base.Method
	entry.Path = base.Path
	entry.IP = base.IP
	entry.UserAgent = base.UserAgent
	entry.Set("api_key_id", base.Fields["api_key_id"])
	entry.Timestamp = time.Now()
	entry.Level = zerolog.InfoLevel.String()
	if entry.Error != "" {
		entry.Level = zerolog.ErrorLevel.String()
	}

	if !sink.Enqueue(entry) {
		RequestLog(c).Warn().Str("action", entry.ActionType).Msg("audit entry dropped")
	}
}

func requestEntry(c *gin.Context, message string) *model.LogEntry {
	entry := &model.LogEntry{
		Message:   message,
		RequestID: GetRequestID(c),
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
	return entry.Set("api_key_id", GetAPIKeyID(c))
}

func levelForStatus(status int) zerolog.Level {
	switch {
	case status >= 500:
		return zerolog.ErrorLevel
	case status >= 400:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
