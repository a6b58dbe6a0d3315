package middleware

import (
	"github.com/gin-gonic/gin"

	"hospital-api-server/internal/utils"
)

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.ContentType() != gin.MIMEJSON {
			utils.UnsupportedMediaType(c, "Content-Type must be application/json")
			return
		}
		c.Next()
	}
}
