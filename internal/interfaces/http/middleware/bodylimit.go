package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alvarosc2000/BriefNest-Local/internal/interfaces/http/dto"
)

// BodyLimit caps the request body size. Requests that declare a larger
// Content-Length are rejected up front; chunked bodies are capped while
// streaming via MaxBytesReader. Webhook payloads get their own tighter
// cap in the webhook handler.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponse(dto.ErrCodePayloadTooLarge, "Request body exceeds maximum allowed size"))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
