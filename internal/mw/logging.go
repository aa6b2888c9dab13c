package mw

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per request. Server errors
// log at error level so they stand out of an info-level stream.
func RequestLogger(log zerolog.Logger, ipHeader string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		evt := log.Info()
		if status >= 500 {
			evt = log.Error()
		}
		evt.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Int("bytes", c.Writer.Size()).
			Dur("latency", time.Since(start)).
			Str("client_ip", ClientIP(c, ipHeader)).
			Msg("request")
	}
}
