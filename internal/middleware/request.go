package middleware

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// RequestID tags every request with the caller's X-Request-ID or a fresh UUID.
func RequestID() drift.HandlerFunc {
	return func(c *drift.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(RequestIDKey, id)
		c.Next()
	}
}

func GetRequestID(c *drift.Context) string {
	if id, ok := c.Get(RequestIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// RequestLogger writes one line per request once the rest of the chain has run.
// A nil logger uses the standard logger.
func RequestLogger(logger *log.Logger) drift.HandlerFunc {
	if logger == nil {
		logger = log.Default()
	}
	return func(c *drift.Context) {
		start := time.Now()
		c.Next()

		id := GetRequestID(c)
		if id == "" {
			id = "-"
		}
		logger.Printf("[%s] %s %s %s", id, c.Request.Method, c.Request.URL.Path, time.Since(start).Round(time.Microsecond))
	}
}
