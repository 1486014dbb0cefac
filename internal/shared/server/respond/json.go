package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse is the envelope wrapping every successful API payload.
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Data writes a 200 response with the payload wrapped in the success envelope.
func Data(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: payload})
}

// JSON writes a JSON response with the given status, bypassing the envelope.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}
