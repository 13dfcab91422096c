package middleware

import (
	"net/http"
	"time"

	"github.com/andresuchdata/autoorder/backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Logger logs every request once it has been served
func Logger() gin.HandlerFunc {
	httpLog := logger.Component("http")

	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if raw != "" {
			path = path + "?" + raw
		}

		status := c.Writer.Status()
		event := httpLog.Info()
		if status >= http.StatusInternalServerError {
			event = httpLog.Error()
		} else if status >= http.StatusBadRequest {
			event = httpLog.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Str("ip", c.ClientIP()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("Request processed")
	}
}

// Recovery recovers from panics and logs the error
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Log.Error().
					Interface("error", err).
					Str("path", c.Request.URL.Path).
					Msg("Recovered from panic")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
