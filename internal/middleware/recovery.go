package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"
	"github.com/haierkeys/link-store-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecoveryWithLogger 创建带日志器的 Recovery 中间件（支持依赖注入）
func RecoveryWithLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery
		defer func() {
			if err := recover(); err != nil {
				var errorMsg string
				fields := []zap.Field{
					zap.Int("status", c.Writer.Status()),
					zap.String("router", path),
					zap.String(logger.FieldMethod, c.Request.Method),
					zap.String("query", query),
					zap.String("ip", app.GetRequestIP(c)),
					zap.String("user-agent", c.Request.UserAgent()),
					zap.String(logger.FieldTraceID, GetTraceIDFromGin(c)),
				}

				switch e := err.(type) {
				case error:
					errorMsg = e.Error()
					fields = append(fields, zap.Error(e))
				case string:
					errorMsg = e
					fields = append(fields, zap.String("panic_value", e))
				default:
					// 如果是其它类型的 panic（如非错误类型的 panic）
					errorMsg = fmt.Sprintf("%v", e)
					fields = append(fields, zap.String("panic_value", errorMsg))
				}
				fields = append(fields, zap.String("stack", string(debug.Stack())))
				log.Error("Recovered from panic", fields...)

				// 返回统一的错误响应
				app.NewResponse(c).ToResponseWithStatus(http.StatusInternalServerError,
					code.ErrorServerInternal.Clone().WithDetails(errorMsg))
				c.Abort()
			}
		}()

		c.Next()
	}
}
