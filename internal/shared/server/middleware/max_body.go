package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipart framing overhead on top of the configured file cap
const bodySlack = 64 << 10

// MaxBody caps the request body so oversized uploads fail at the
// transport layer instead of being buffered whole.
func MaxBody(maxUploadBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes+bodySlack)
		c.Next()
	}
}
