package app

import (
	"strings"

	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// VersionInfo version information // 版本信息
type VersionInfo struct {
	Version   string `json:"version"`
	GitTag    string `json:"gitTag"`
	BuildTime string `json:"buildTime"`
}

// LangKey gin.Context key holding the negotiated language
// LangKey gin.Context 中保存协商语言的键
const LangKey = "lang"

type Response struct {
	Ctx *gin.Context
}

type Pager struct {
	Page      int `json:"page"`      // Page number // 页码
	PageSize  int `json:"pageSize"`  // Page size // 每页数量
	TotalRows int `json:"totalRows"` // Total rows // 总行数
}

type ListRes struct {
	List  interface{} `json:"list"`  // Data list // 数据清单
	Pager Pager       `json:"pager"` // Pagination info // 翻页信息
}

// Res is the unified response structure: Code/Status/Message/Data
// Res 是统一的响应结构：Code/Status/Message/Data
type Res struct {
	Code    int         `json:"code"`
	Status  bool        `json:"status"`
	Message interface{} `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{
		Ctx: ctx,
	}
}

// Lang returns the language chosen by the lang middleware, empty means the global default
// Lang 返回 lang 中间件协商的语言
func (r *Response) Lang() string {
	if r.Ctx == nil {
		return code.GetGlobalDefaultLang()
	}
	if l := r.Ctx.GetString(LangKey); l != "" {
		return l
	}
	return code.GetGlobalDefaultLang()
}

// GetRequestIP gets the request IP
// GetRequestIP 获取ip
func GetRequestIP(c *gin.Context) string {
	reqIP := c.ClientIP()
	if reqIP == "::1" {
		reqIP = "127.0.0.1"
	}
	return reqIP
}

// GetAccessHost returns scheme://host of the current request, honouring X-Forwarded-Proto.
func GetAccessHost(c *gin.Context) string {
	proto := c.Request.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
	}
	return proto + "://" + c.Request.Host
}

// ToResponse writes codeObj as the unified envelope
// ToResponse 输出到浏览器：统一使用 Res
func (r *Response) ToResponse(codeObj *code.Code) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.MsgIn(r.Lang()),
		Data:    codeObj.Data(),
	}

	if codeObj.HaveDetails() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.send(codeObj.StatusCode(), content)
}

// ToResponseWithStatus writes the envelope with an explicit HTTP status, used for 404 and similar
// ToResponseWithStatus 使用指定 HTTP 状态码输出统一结构，用于 404 等场景
func (r *Response) ToResponseWithStatus(status int, codeObj *code.Code) {
	r.Ctx.Set("status_code", status)

	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.MsgIn(r.Lang()),
		Data:    codeObj.Data(),
	}
	if codeObj.HaveDetails() {
		content.Details = strings.Join(codeObj.Details(), ",")
	}

	r.send(status, content)
}

// ToResponseListWithConfig outputs a list response, page size resolved with cfg
// ToResponseListWithConfig 输出列表响应，分页大小按 cfg 计算
func (r *Response) ToResponseListWithConfig(codeObj *code.Code, list interface{}, totalRows int, cfg PaginationConfig) {
	r.Ctx.Set("status_code", codeObj.StatusCode())

	content := Res{
		Code:    codeObj.Code(),
		Status:  codeObj.Status(),
		Message: codeObj.MsgIn(r.Lang()),
		Data: ListRes{
			List:  list,
			Pager: *NewPagerWithConfig(r.Ctx, cfg, totalRows),
		},
	}

	r.send(codeObj.StatusCode(), content)
}

func (r *Response) send(statusCode int, content interface{}) {
	r.Ctx.JSON(statusCode, content)
}
