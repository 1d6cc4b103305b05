package routers

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/haierkeys/link-store-service/internal/app"
	"github.com/haierkeys/link-store-service/internal/middleware"
	"github.com/haierkeys/link-store-service/internal/routers/api_router"
	"github.com/haierkeys/link-store-service/internal/routers/page_router"
	"github.com/haierkeys/link-store-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

// newMethodLimiters 按配置为提交接口创建令牌桶，rate <= 0 不限流
func newMethodLimiters(rate int) limiter.Face {
	l := limiter.NewMethodLimiter()
	if rate <= 0 {
		return l
	}
	return l.AddBuckets(
		limiter.BucketRule{
			Key:          "POST /links",
			FillInterval: time.Second,
			Capacity:     int64(rate),
			Quantum:      int64(rate),
		},
		limiter.BucketRule{
			Key:          "POST /api/links",
			FillInterval: time.Second,
			Capacity:     int64(rate),
			Quantum:      int64(rate),
		},
	)
}

// NewRouter 创建公开路由
// frontendFiles 需包含 templates/index.html 与 static/
func NewRouter(frontendFiles fs.FS, appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	tmpl := template.Must(template.ParseFS(frontendFiles, "templates/*.html"))
	staticFiles, err := fs.Sub(frontendFiles, "static")
	if err != nil {
		panic(err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
	r.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
	r.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
	r.Use(middleware.RecoveryWithLogger(appContainer.Logger()))
	r.Use(middleware.LangWithTranslator(uni, cfg.App.DefaultLang))
	r.Use(middleware.RateLimiter(newMethodLimiters(cfg.App.RateLimit)))
	r.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))

	cacheMiddleware := func(c *gin.Context) {
		// 设置强缓存，缓存一天
		c.Header("Cache-Control", "public, max-age=86400")
		c.Next()
	}
	r.Group("/static", cacheMiddleware).StaticFS("/", http.FS(staticFiles))

	// 页面
	pageHandler := page_router.NewPageHandler(appContainer)
	r.GET("/", pageHandler.Index)
	r.POST("/links", pageHandler.AddLink)
	r.GET("/links.json", pageHandler.RawSource)
	r.GET("/export/:id/links.json", pageHandler.Export)

	api := r.Group("/api")
	{
		// 创建 Handlers（注入 App Container）
		linkHandler := api_router.NewLinkHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)
		healthHandler := api_router.NewHealthHandler(appContainer)

		api.GET("/links", linkHandler.List)
		api.POST("/links", linkHandler.Create)
		api.GET("/links/export", linkHandler.Export)

		api.GET("/version", versionHandler.ServerVersion)
		api.GET("/health", healthHandler.Check)
	}

	r.NoRoute(middleware.NoFound())

	return r
}
