// Package page_router 提供服务端渲染页面与下载路由
package page_router

import (
	"errors"
	"net/http"

	"github.com/haierkeys/link-store-service/internal/app"
	"github.com/haierkeys/link-store-service/internal/dto"
	"github.com/haierkeys/link-store-service/internal/service"
	pkgapp "github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IndexTemplate 页面模板名
const IndexTemplate = "index.html"

// PageData index.html 的渲染数据
type PageData struct {
	HTMLLang string

	// 表单当前值，提交失败时保留
	Title string
	URL   string

	// 当前提交的提示信息，错误与成功互斥
	Message string
	IsError bool

	// 最新导出的下载地址，至少成功添加一次后才有值
	DownloadURL string

	Links []dto.LinkDTO
}

// PageHandler 页面处理器
type PageHandler struct {
	App *app.App
}

// NewPageHandler 创建 PageHandler 实例
func NewPageHandler(a *app.App) *PageHandler {
	return &PageHandler{App: a}
}

// Index 渲染页面
func (h *PageHandler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, &PageData{})
}

// AddLink 处理表单提交
// 拒绝时返回 422 并保留输入，成功时清空输入
func (h *PageHandler) AddLink(c *gin.Context) {
	lang := pkgapp.NewResponse(c).Lang()

	var params dto.LinkAddRequest
	if err := c.ShouldBind(&params); err != nil {
		h.render(c, http.StatusBadRequest, &PageData{
			Message: code.ErrorInvalidParams.MsgIn(lang),
			IsError: true,
		})
		return
	}

	res, err := h.App.LinkService.Add(c.Request.Context(), &params)
	if err != nil {
		status := http.StatusInternalServerError
		msg := code.ErrorServerInternal.MsgIn(lang)

		var codeErr *code.Code
		if errors.As(err, &codeErr) {
			msg = codeErr.MsgIn(lang)
			status = codeErr.HTTPStatus()
			if errors.Is(err, code.ErrorLinkFieldsRequired) || errors.Is(err, code.ErrorLinkURLInvalid) {
				status = http.StatusUnprocessableEntity
			}
		}
		if status == http.StatusInternalServerError {
			h.App.Logger().Error("add link failed", zap.Error(err))
		}

		h.render(c, status, &PageData{
			Title:   params.Title,
			URL:     params.URL,
			Message: msg,
			IsError: true,
		})
		return
	}

	h.render(c, http.StatusOK, &PageData{
		Message:     code.SuccessLinkAdded.MsgIn(lang),
		DownloadURL: res.DownloadURL,
	})
}

// Export 下载导出快照
// 被替换的快照返回 404
func (h *PageHandler) Export(c *gin.Context) {
	snap, err := h.App.LinkService.GetExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.ExportFileName+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/json; charset=utf-8", snap.Content)
}

// RawSource 原样返回启动时使用的 links.json
func (h *PageHandler) RawSource(c *gin.Context) {
	content, err := h.App.LinkService.Raw(c.Request.Context())
	if err != nil {
		h.App.Logger().Debug("links.json passthrough failed", zap.Error(err))
		pkgapp.NewResponse(c).ToResponseWithStatus(http.StatusNotFound, code.ErrorNotFoundAPI)
		return
	}
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "application/json; charset=utf-8", content)
}

func (h *PageHandler) render(c *gin.Context, status int, data *PageData) {
	ctx := c.Request.Context()

	links, err := h.App.LinkService.List(ctx)
	if err != nil {
		h.App.Logger().Error("list links failed", zap.Error(err))
		links = []dto.LinkDTO{}
	}
	data.Links = links

	if data.DownloadURL == "" {
		if export, err := h.App.LinkService.LatestExport(ctx); err == nil {
			data.DownloadURL = export.DownloadURL
		}
	}

	data.HTMLLang = "en"
	if pkgapp.NewResponse(c).Lang() == "zh_cn" {
		data.HTMLLang = "zh-CN"
	}

	c.HTML(status, IndexTemplate, data)
}

func writeError(c *gin.Context, err error) {
	response := pkgapp.NewResponse(c)
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		response.ToResponseWithStatus(codeErr.HTTPStatus(), codeErr)
		return
	}
	response.ToResponseWithStatus(http.StatusInternalServerError, code.ErrorServerInternal)
}
