package server

import (
	"net/http"
	"strconv"
	"time"

	"agent-demos/internal/common/errors"
	"agent-demos/internal/common/logger"
	"agent-demos/internal/common/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// requestID reuses the caller's X-Request-ID or mints a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(status)).Inc()

		fields := map[string]interface{}{
			logger.FieldRequestID: c.GetString(requestIDKey),
			"method":              c.Request.Method,
			"path":                c.Request.URL.Path,
			"status":              status,
			"latencyMs":           time.Since(start).Milliseconds(),
		}
		if status >= http.StatusInternalServerError {
			log.Warn("request completed", fields)
			return
		}
		log.Info("request completed", fields)
	}
}

// recovery turns a handler panic into the generic unexpected-error body.
func recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		stdErr := errors.NewUnexpectedError(recovered)
		log.Error("handler panicked", map[string]interface{}{
			logger.FieldRequestID: c.GetString(requestIDKey),
			"path":                c.Request.URL.Path,
			"panic":               stdErr.Details,
		})
		abortWithError(c, stdErr)
	})
}

type errorResponse struct {
	Error     string              `json:"error"`
	Code      errors.ErrorCode    `json:"code"`
	Fields    []errors.FieldError `json:"fields,omitempty"`
	RequestID string              `json:"requestId,omitempty"`
}

func abortWithError(c *gin.Context, err error) {
	stdErr := errors.Normalize(err)
	resp := errorResponse{
		Error:     stdErr.PublicMessage(),
		Code:      stdErr.Code,
		RequestID: c.GetString(requestIDKey),
	}
	if stdErr.Code == errors.ErrCodeValidationFailed {
		resp.Fields = stdErr.Fields
	}
	c.AbortWithStatusJSON(stdErr.HTTPStatus(), resp)
}
