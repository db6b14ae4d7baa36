package utils

import "github.com/gin-gonic/gin"

// ApiResponse is the envelope every endpoint shares:
// { "success": bool, "data": payload|null, "message": string }.
type ApiResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// OK renders a success envelope. An empty-result payload still goes
// through here: empty is an empty state, not an error.
func OK(c *gin.Context, message string, data any) {
	c.JSON(200, ApiResponse{Success: true, Data: data, Message: message})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(201, ApiResponse{Success: true, Data: data, Message: message})
}

// Fail renders a failure envelope with a null payload.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, ApiResponse{Success: false, Data: nil, Message: message})
}
