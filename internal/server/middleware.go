package server

import (
	"net/http"
	"time"

	"github.com/she110ff/metalcat-sub002/utils"

	"github.com/gin-gonic/gin"
)

const requestIDHeader = "X-Request-ID"

// RequestLoggerMiddleware tags each request with an ID and logs it with timing once handled
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	requestID := c.GetHeader(requestIDHeader)
	if requestID == "" {
		requestID = utils.GenerateID()
	}
	c.Header(requestIDHeader, requestID)

	c.Next() // process request

	fields := map[string]any{
		"request_id": requestID,
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	}
	if c.Writer.Status() >= http.StatusInternalServerError {
		utils.Error("HTTP Request", fields)
		return
	}
	utils.Info("HTTP Request", fields)
}
