// Package api_router 提供 HTTP API 路由处理器
package api_router

import (
	"time"

	"github.com/haierkeys/link-store-service/internal/app"
	"github.com/haierkeys/link-store-service/internal/dto"
	pkgapp "github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// HealthHandler 健康检查处理器
type HealthHandler struct {
	*Handler
}

// NewHealthHandler 创建健康检查处理器实例
func NewHealthHandler(a *app.App) *HealthHandler {
	return &HealthHandler{Handler: NewHandler(a)}
}

// Check 健康检查接口
// 加载失败不影响服务可用，只把状态标记为 degraded
// @Summary 健康检查
// @Description 返回服务版本、运行时间和 links.json 的加载状态
// @Tags 系统
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.HealthDTO}
// @Router /api/health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	state := h.App.LinkService.LoadState()

	res := dto.HealthDTO{
		Status:  "healthy",
		Version: h.App.Version().Version,
		Uptime:  time.Since(h.App.StartTime).Seconds(),
		Links:   state,
	}
	if state.Error != "" {
		res.Status = "degraded"
	}

	pkgapp.NewResponse(c).ToResponse(code.Success.Clone().WithData(res))
}
