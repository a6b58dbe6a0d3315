package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hospital-api-server/internal/middleware"
)

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
