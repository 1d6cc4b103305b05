package middleware

import (
	"net/http"

	"github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// NoFound 404 handler
// NoFound 404 处理
func NoFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		response := app.NewResponse(c)
		response.ToResponseWithStatus(http.StatusNotFound, code.ErrorNotFoundAPI)
		c.Abort()
	}
}
