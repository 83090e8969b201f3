package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Chain is the global middleware stack in registration order. Logger wraps Recovery so
// requests that panic still get an access log line with their 500 status.
func Chain(log zerolog.Logger, corsOrigins []string) []gin.HandlerFunc {
	return []gin.HandlerFunc{
		RequestID(),
		Logger(log),
		Recovery(log),
		CORS(corsOrigins),
	}
}
