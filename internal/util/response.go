package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the envelope for all error bodies. Success bodies are
// endpoint-specific and written directly by the handlers.
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
}

// ErrorInfo represents error information in a response
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SendError sends an error response
func SendError(c *gin.Context, err error) {
	appErr := GetAppError(err)
	if appErr == nil {
		appErr = FromStoreError(err)
	}

	c.JSON(appErr.StatusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		},
	})
}

// SendCustomError sends a custom error response
func SendCustomError(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

// AbortWithCustomError aborts the request with a custom error
func AbortWithCustomError(c *gin.Context, statusCode int, code, message string) {
	SendCustomError(c, statusCode, code, message)
	c.Abort()
}

// AbortWithInternalError aborts the request with a generic 500
func AbortWithInternalError(c *gin.Context) {
	SendCustomError(c, http.StatusInternalServerError, ErrCodeInternal, "Internal server error")
	c.Abort()
}
