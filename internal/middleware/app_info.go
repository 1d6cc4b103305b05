package middleware

import (
	"github.com/haierkeys/link-store-service/pkg/app"

	"github.com/gin-gonic/gin"
)

// AppVersionHeader 响应头中携带服务版本
const AppVersionHeader = "X-Link-Store-Version"

// AppInfoWithConfig 在上下文中写入应用名称与版本，并通过响应头返回版本
func AppInfoWithConfig(name, version string) gin.HandlerFunc {

	return func(c *gin.Context) {
		c.Set("app_name", name)
		c.Set("app_version", version)
		c.Set("access_host", app.GetAccessHost(c))
		c.Header(AppVersionHeader, version)

		c.Next()
	}
}
