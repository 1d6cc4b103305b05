package errors

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/haierkeys/link-store-service/internal/middleware"
	pkgapp "github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
)

// AppError 统一应用错误结构体
// 包含错误码、消息、详情、追踪ID和时间戳
type AppError struct {
	// Code 错误码
	Code int `json:"code"`
	// Status 是否成功，错误始终为 false
	Status bool `json:"status"`
	// Message 错误消息
	Message string `json:"message"`
	// Details 错误详情（可选）
	Details string `json:"details,omitempty"`
	// TraceID 请求追踪ID
	TraceID string `json:"traceId,omitempty"`
	// Cause 原始错误（不序列化到JSON）
	Cause error `json:"-"`
	// HTTPStatus 响应使用的 HTTP 状态码（不序列化到JSON）
	HTTPStatus int `json:"-"`
	// Timestamp 错误发生时间
	Timestamp time.Time `json:"timestamp"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap 实现 errors.Unwrap 接口，支持错误链路追踪
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError 从 Code 对象创建 AppError
func NewAppError(c *code.Code, cause error) *AppError {
	return newAppError(c, code.GetGlobalDefaultLang(), cause)
}

func newAppError(c *code.Code, lang string, cause error) *AppError {
	return &AppError{
		Code:       c.Code(),
		Message:    c.MsgIn(lang),
		Details:    strings.Join(c.Details(), ","),
		Cause:      cause,
		HTTPStatus: c.HTTPStatus(),
		Timestamp:  time.Now(),
	}
}

// NewAppErrorWithMessage 创建带自定义消息的 AppError
func NewAppErrorWithMessage(errorCode int, message string, cause error) *AppError {
	return &AppError{
		Code:       errorCode,
		Message:    message,
		Cause:      cause,
		HTTPStatus: http.StatusOK,
		Timestamp:  time.Now(),
	}
}

// WithTraceID 设置 TraceID 并返回自身（链式调用）
func (e *AppError) WithTraceID(traceID string) *AppError {
	e.TraceID = traceID
	return e
}

// WithDetails 设置详情并返回自身（链式调用）
func (e *AppError) WithDetails(details ...string) *AppError {
	e.Details = strings.Join(details, ",")
	return e
}

// ErrorResponse 统一错误响应处理
// 从 gin.Context 获取 TraceID 与请求语言，将错误转换为 AppError 并返回 JSON 响应
func ErrorResponse(c *gin.Context, err error) {
	traceID := middleware.GetTraceIDFromGin(c)
	lang := pkgapp.NewResponse(c).Lang()

	var appErr *AppError
	if errors.As(err, &appErr) {
		// 已经是 AppError，设置 TraceID
		appErr.TraceID = traceID
		send(c, appErr)
		return
	}

	// 检查是否是 Code 类型错误
	var codeErr *code.Code
	if errors.As(err, &codeErr) {
		send(c, newAppError(codeErr, lang, err).WithTraceID(traceID))
		return
	}

	// 未知错误，返回内部错误
	send(c, newAppError(code.ErrorServerInternal, lang, err).WithTraceID(traceID))
}

// ErrorResponseWithCode 使用指定的 Code 对象返回错误响应
func ErrorResponseWithCode(c *gin.Context, codeErr *code.Code, cause error) {
	lang := pkgapp.NewResponse(c).Lang()
	send(c, newAppError(codeErr, lang, cause).WithTraceID(middleware.GetTraceIDFromGin(c)))
}

func send(c *gin.Context, appErr *AppError) {
	status := appErr.HTTPStatus
	if status == 0 {
		status = http.StatusOK
	}
	c.Set("status_code", status)
	c.JSON(status, appErr)
}

// IsAppError 检查错误是否为 AppError 类型
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 从错误链中获取 AppError
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
