package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerboard/internal/domain/dto"
	"github.com/guttosm/tickerboard/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from panics, logs the
// stack trace and answers with a standardized 500 ErrorResponse.
//
// Websocket requests have a hijacked connection by the time a handler panics, so
// for those the request is only aborted.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.L().Error().
					Str("request_id", toString(rid)).
					Str("path", c.Request.URL.Path).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				if c.IsWebsocket() {
					c.Abort()
					return
				}
				errResponse := dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, errResponse)
			}
		}()

		c.Next()
	}
}
