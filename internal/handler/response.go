package handler

import (
	"errors"
	"net/http"

	"injai_channel/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// validationMessage returns the client-facing message of a validation failure
func validationMessage(err error) (string, bool) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return verr.Message, true
	}
	return "", false
}

// internalError logs err and answers with a generic message
func internalError(c *gin.Context, log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).
		Str("path", c.Request.URL.Path).
		Str("request_id", c.Writer.Header().Get("X-Request-Id")).
		Msg(msg)
	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

// writeServiceError maps the common service errors. notFound is the message for
// service.ErrNotFound.
func writeServiceError(c *gin.Context, log zerolog.Logger, err error, notFound, fallback string) {
	if msg, ok := validationMessage(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	internalError(c, log, err, fallback)
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}
