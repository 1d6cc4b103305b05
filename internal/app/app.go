// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/haierkeys/link-store-service/internal/dao"
	"github.com/haierkeys/link-store-service/internal/domain"
	"github.com/haierkeys/link-store-service/internal/service"
	pkgapp "github.com/haierkeys/link-store-service/pkg/app"

	"go.uber.org/zap"
)

// App 应用容器，封装所有依赖和服务
type App struct {
	// 基础设施（注入的依赖）
	config *AppConfig
	logger *zap.Logger

	// Repository 层
	LinkRepo     domain.LinkRepository
	SnapshotRepo domain.SnapshotRepository
	Source       domain.LinkSource

	// Service 层
	LinkService service.LinkService

	StartTime time.Time

	// 关闭控制
	shutdownOnce sync.Once
}

// Option 应用容器选项
type Option func(*App)

// WithLinkSource 替换配置中的资源来源，主要用于测试
func WithLinkSource(src domain.LinkSource) Option {
	return func(a *App) {
		a.Source = src
	}
}

// NewApp 创建应用容器实例
// 初始化所有依赖并进行依赖注入
// cfg: 应用配置（必须）
// logger: zap 日志器（必须）
func NewApp(cfg *AppConfig, logger *zap.Logger, opts ...Option) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	a := &App{
		config:    cfg,
		logger:    logger,
		StartTime: time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}

	// 初始化 Repository 层
	a.LinkRepo = dao.NewLinkRepository()
	a.SnapshotRepo = dao.NewSnapshotRepository()

	if a.Source == nil {
		src, err := dao.NewLinkSource(cfg.GetSourceConfig(), logger)
		if err != nil {
			return nil, fmt.Errorf("links source: %w", err)
		}
		a.Source = src
	}

	// 创建 ServiceConfig（从 AppConfig 提取 Service 层需要的配置）
	svcConfig := &service.ServiceConfig{
		Links: service.LinkServiceConfig{
			FetchTimeout: cfg.GetFetchTimeout(),
		},
	}

	// 初始化 Service 层（依赖注入）
	a.LinkService = service.NewLinkService(a.LinkRepo, a.SnapshotRepo, a.Source, logger, svcConfig)

	logger.Info("App container initialized successfully",
		zap.String("source", a.Source.Describe()),
		zap.Duration("fetchTimeout", svcConfig.Links.FetchTimeout))

	return a, nil
}

// Config 获取应用配置
func (a *App) Config() *AppConfig {
	return a.config
}

// Logger 获取日志器
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Version 获取版本信息
func (a *App) Version() pkgapp.VersionInfo {
	return pkgapp.VersionInfo{
		Version:   Version,
		GitTag:    GitTag,
		BuildTime: BuildTime,
	}
}

// IsProductionMode 是否为生产模式
// 根据日志配置中的 Production 字段判断
func (a *App) IsProductionMode() bool {
	return a.config.Log.Production
}

// DefaultShutdownTimeout 默认关闭超时时间
const DefaultShutdownTimeout = 30 * time.Second

// Shutdown 优雅关闭应用容器
// 进程内列表无需落盘，这里只记录最终状态
func (a *App) Shutdown(ctx context.Context) error {
	a.shutdownOnce.Do(func() {
		if ctx == nil {
			ctx = context.Background()
		}
		count, _ := a.LinkRepo.Count(ctx)
		a.logger.Info("App container shut down", zap.Int("links", count))
	})
	return nil
}
