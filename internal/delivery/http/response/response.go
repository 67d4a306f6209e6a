package response

import (
	"github.com/gin-gonic/gin"
)

// RequestIDKey is the gin context key the request id middleware stores under.
const RequestIDKey = "RequestID"

// Response is the envelope every /v1 endpoint answers with
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// RequestID returns the id assigned to the current request, or "" outside the middleware.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Success writes a successful envelope
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: RequestID(c),
	})
}

// Error writes a failed envelope. detail is omitted when nil.
func Error(c *gin.Context, code int, message string, detail interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     detail,
		RequestID: RequestID(c),
	})
}

// Page wraps one page of a listing under key along with its paging totals.
func Page(key string, items interface{}, total int64, page, pageSize int) gin.H {
	return gin.H{
		key:         items,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	}
}
