package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyRequestID is both the correlation header and the gin context key
// the access log reads the id back from.
const KeyRequestID = "X-Request-ID"

// RequestID propagates the caller's request id or mints one, and echoes
// it on the response so clients can quote it when reporting failures.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(KeyRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
