package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope fields that callers cannot override.
const (
	fieldSuccess   = "success"
	fieldMessage   = "message"
	fieldRequestID = "requestId"
)

// body builds a flat JSON object: success, message, the request id when one
// is set, then every extra field at the top level.
func body(c *gin.Context, ok bool, message string, fields gin.H) gin.H {
	out := gin.H{}
	for k, v := range fields {
		out[k] = v
	}
	out[fieldSuccess] = ok
	out[fieldMessage] = message
	if rid := c.GetString("request_id"); rid != "" {
		out[fieldRequestID] = rid
	}
	return out
}

// Success writes a success envelope. status 0 means 200.
func Success(c *gin.Context, status int, message string, fields gin.H) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, body(c, true, message, fields))
}

// Error writes a failure envelope and aborts the handler chain.
// status 0 means 400.
func Error(c *gin.Context, status int, message string, fields gin.H) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, body(c, false, message, fields))
}
