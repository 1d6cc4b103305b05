// Package dto 定义数据传输对象（请求参数和响应结构）
package dto

import (
	"github.com/haierkeys/link-store-service/pkg/timex"
)

// ---------------- DTO / Request Params ----------------

// LinkAddRequest 新增链接请求参数
// 校验由 service 层完成，以保证空值检查先于前缀检查
type LinkAddRequest struct {
	Title string `json:"title" form:"title" validate:"notblank"`        // 标题
	URL   string `json:"url" form:"url" validate:"notblank,httpprefix"` // 地址，需以 http:// 或 https:// 开头
}

// LinkListRequest 链接列表分页参数
type LinkListRequest struct {
	Page     int `json:"page" form:"page" binding:"omitempty,min=1"`          // 页码
	PageSize int `json:"pageSize" form:"pageSize" binding:"omitempty,min=1"` // 每页数量
}

// ---------------- DTO / Response ----------------

// LinkDTO 链接记录
type LinkDTO struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// LinkAddResponse 新增链接响应
type LinkAddResponse struct {
	Link        LinkDTO `json:"link"`
	Count       int     `json:"count"`
	DownloadURL string  `json:"downloadUrl"`
}

// ExportDTO 导出快照信息
type ExportDTO struct {
	ID          string     `json:"id"`
	Count       int        `json:"count"`
	Size        int        `json:"size"`
	CreatedAt   timex.Time `json:"createdAt"`
	DownloadURL string     `json:"downloadUrl"`
}

// SourceCheckDTO 资源检查结果
type SourceCheckDTO struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
	Size   int    `json:"size"`
}

// HealthDTO 健康检查结果
type HealthDTO struct {
	Status  string       `json:"status"`  // "healthy" 或 "degraded"
	Version string       `json:"version"` // 服务版本号
	Uptime  float64      `json:"uptime"`  // 运行时间（秒）
	Links   LoadStateDTO `json:"links"`   // links.json 加载状态
}

// LoadStateDTO 最近一次加载状态
type LoadStateDTO struct {
	Source   string     `json:"source"`
	Loaded   bool       `json:"loaded"`
	Count    int        `json:"count"`
	Error    string     `json:"error,omitempty"`
	LoadedAt timex.Time `json:"loadedAt"`
}
