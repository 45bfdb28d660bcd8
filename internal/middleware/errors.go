package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ahmed-26/goldpulse/internal/domain/dto"
	"github.com/Ahmed-26/goldpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON response.
//
// Handlers that already wrote a response are left alone; this is the
// fallback for errors that reached the end of the chain unanswered.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	logger.L().Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled request error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}

// AbortWithError stops the request with the given status and a standardized
// JSON error body. Used by handlers for expected failure responses.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		logger.L().Warn().Err(err).Int("status", status).Str("path", c.Request.URL.Path).Msg(message)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
