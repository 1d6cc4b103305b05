// Package service implements the business logic layer
// Package service 实现业务逻辑层
package service

import "time"

// ServiceConfig service layer configuration
// ServiceConfig 服务层配置
type ServiceConfig struct {
	Links LinkServiceConfig // Link store related config // 链接相关配置
}

// LinkServiceConfig link service configuration
// LinkServiceConfig 链接服务配置
type LinkServiceConfig struct {
	FetchTimeout time.Duration // Timeout of a single links.json fetch // 单次获取 links.json 的超时时间
	ExportPrefix string        // URL prefix of export downloads, default /export // 导出下载地址前缀
}

// DefaultLinkServiceConfig 默认链接服务配置
func DefaultLinkServiceConfig() LinkServiceConfig {
	return LinkServiceConfig{
		FetchTimeout: 10 * time.Second,
		ExportPrefix: "/export",
	}
}
