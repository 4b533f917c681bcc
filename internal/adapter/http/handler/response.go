package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Ipso-ferro/backEnd-nlpSentimentApp/internal/adapter/http/middleware"
)

// ErrorBody is the JSON error response. Every failure surfaces as an
// "error" message plus a machine-readable code; success responses are the
// bare result payload.
type ErrorBody struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorBody{
		Error:     message,
		Code:      code,
		RequestID: c.GetString(middleware.RequestIDKey),
	})
}
