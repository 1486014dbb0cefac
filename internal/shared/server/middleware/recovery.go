package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/Htttpkaran/ai-resume-checker/internal/shared/server/respond"
	"github.com/Htttpkaran/ai-resume-checker/internal/shared/telemetry"
)

// Recovery recovers from panics and returns a generic error response.
// It is the outermost safety net; handlers report their own failures.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				telemetry.Error("panic", map[string]any{
					"request_id": RequestIDFromContext(c),
					"error":      rec,
					"stack":      string(debug.Stack()),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
				})
				respond.Error(c, http.StatusInternalServerError, "An unexpected error occurred during resume analysis. Please try again.")
			}
		}()
		c.Next()
	}
}
