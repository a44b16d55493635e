package middleware

import (
	"net/http"
	"time"

	"github.com/cloudpower/site-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDKey is the gin context key of the request id
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestLogger assigns a request id (reusing X-Request-ID when the
// client sent one) and writes one log line per request once it is served.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		log := logger.WithRequestID(id)
		event := log.WithLevel(levelFor(status)).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("route", c.FullPath()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int("bytes", c.Writer.Size())
		if q := c.Request.URL.RawQuery; q != "" {
			event = event.Str("query", q)
		}
		if adminID := c.GetString(adminIDKey); adminID != "" {
			event = event.Str("admin_id", adminID)
		}
		event.Msg("request")
	}
}

func levelFor(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
