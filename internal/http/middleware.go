package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mrlokans/birdwatch/internal/auth"
	"github.com/mrlokans/birdwatch/internal/logging"
)

const (
	HeaderRequestID = "X-Request-ID"

	contextKeyRequestID = "request_id"
	contextKeyLogger    = "logger"
)

// RequestID reuses the caller's X-Request-ID or assigns a new one, and
// echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// AccessLog attaches a request-scoped logger and logs every request once
// it completes.
func AccessLog(log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		reqLog := log.With("request_id", c.GetString(contextKeyRequestID))
		c.Set(contextKeyLogger, reqLog)

		c.Next()

		fields := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
			"authenticated", c.GetBool(auth.ContextKeyAuthenticated),
		}
		if c.Writer.Status() >= http.StatusInternalServerError {
			reqLog.Errorw("request", fields...)
			return
		}
		reqLog.Infow("request", fields...)
	}
}

// Recovery turns a panic into a 500 with the standard error body.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		loggerFrom(c).Errorw("Recovered from panic", "panic", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	})
}

func loggerFrom(c *gin.Context) logging.Logger {
	if v, ok := c.Get(contextKeyLogger); ok {
		if l, ok := v.(logging.Logger); ok {
			return l
		}
	}
	return logging.Nop()
}
