package api_router

import (
	"github.com/haierkeys/link-store-service/internal/app"
	"github.com/haierkeys/link-store-service/internal/dto"
	pkgapp "github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"
	apperrors "github.com/haierkeys/link-store-service/pkg/errors"

	"github.com/gin-gonic/gin"
)

// LinkHandler link API router handler
// LinkHandler 链接 API 路由处理器
type LinkHandler struct {
	*Handler
}

// NewLinkHandler creates LinkHandler instance
// NewLinkHandler 创建 LinkHandler 实例
func NewLinkHandler(a *app.App) *LinkHandler {
	return &LinkHandler{Handler: NewHandler(a)}
}

func (h *LinkHandler) pagination() pkgapp.PaginationConfig {
	cfg := h.App.Config().App
	p := pkgapp.DefaultPaginationConfig
	if cfg.DefaultPageSize > 0 {
		p.DefaultPageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 {
		p.MaxPageSize = cfg.MaxPageSize
	}
	return p
}

// List retrieves the saved links
// @Summary Get link list
// @Description Get the in-memory link list in insertion order, paginated
// @Tags Link
// @Produce json
// @Param params query dto.LinkListRequest true "Query Parameters"
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes{list=[]dto.LinkDTO}} "Success"
// @Router /api/links [get]
func (h *LinkHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.LinkListRequest{}
	if valid, errs := pkgapp.BindAndValid(c, params); !valid {
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(errs.ErrorsToString()))
		return
	}

	links, err := h.App.LinkService.List(c.Request.Context())
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	cfg := h.pagination()
	pageSize := pkgapp.GetPageSizeWithConfig(c, cfg)
	offset := pkgapp.GetPageOffset(pkgapp.GetPage(c), pageSize)

	page := make([]dto.LinkDTO, 0)
	if offset < len(links) {
		end := offset + pageSize
		if end > len(links) {
			end = len(links)
		}
		page = links[offset:end]
	}

	response.ToResponseListWithConfig(code.Success, page, len(links), cfg)
}

// Create validates and appends a link
// @Summary Add link
// @Description Validate title/url and append to the list, the export snapshot is regenerated
// @Tags Link
// @Accept json
// @Produce json
// @Param params body dto.LinkAddRequest true "Link"
// @Success 200 {object} pkgapp.Res{data=dto.LinkAddResponse} "Success"
// @Router /api/links [post]
func (h *LinkHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	var params dto.LinkAddRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		response.ToResponse(code.ErrorInvalidParams.Clone().WithDetails(err.Error()))
		return
	}

	res, err := h.App.LinkService.Add(c.Request.Context(), &params)
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}

	response.ToResponse(code.SuccessLinkAdded.Clone().WithData(res))
}

// Export retrieves the latest export snapshot
// @Summary Get export info
// @Description Get metadata and download url of the latest links.json export
// @Tags Link
// @Produce json
// @Success 200 {object} pkgapp.Res{data=dto.ExportDTO} "Success"
// @Router /api/links/export [get]
func (h *LinkHandler) Export(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	res, err := h.App.LinkService.LatestExport(c.Request.Context())
	if err != nil {
		apperrors.ErrorResponse(c, err)
		return
	}
	response.ToResponse(code.Success.Clone().WithData(res))
}
