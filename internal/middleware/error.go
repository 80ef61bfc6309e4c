package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerboard/internal/domain/dto"
	"github.com/guttosm/tickerboard/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a JSON ErrorResponse when
// the handler did not write a response itself.
//
// An attached dto.ErrorResponse is sent as is; anything else becomes a 500.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	logger.L().Error().Err(last).Str("path", c.Request.URL.Path).Msg("request failed")

	var resp dto.ErrorResponse
	if errors.As(last, &resp) {
		c.JSON(http.StatusInternalServerError, resp)
		return
	}
	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", last))
}

// AbortWithError aborts the request with status and a standardized ErrorResponse body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
