package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/tickerboard/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, route, status code,
// request latency and request ID (if available).
//
// 5xx responses are logged at error level, 4xx at warn, everything else at info.
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-...","method":"POST","path":"/api/v1/dashboard/update","status":200,"latency_ms":412,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = logger.L().Error()
		case status >= http.StatusBadRequest:
			ev = logger.L().Warn()
		default:
			ev = logger.L().Info()
		}

		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("route", c.FullPath()).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// RateLimiter is an in-memory middleware allowing up to limit requests per window
// for each client IP. Excess requests get 429 Too Many Requests.
//
// Each call returns a limiter with its own client table.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{"message":"rate limit exceeded", ...}
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		mu.Unlock()

		if exceeded {
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}

		c.Next()
	}
}
