package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haierkeys/link-store-service/internal/middleware"
	pkgapp "github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set(middleware.TraceIDKey, "trace-1")
	return c, w
}

func TestErrorResponse_Code(t *testing.T) {
	c, w := newContext()
	c.Set(pkgapp.LangKey, "zh_cn")

	ErrorResponse(c, code.ErrorExportNotFound.Clone().WithDetails("abc"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body AppError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 452, body.Code)
	assert.Equal(t, "导出文件不存在或已被替换", body.Message)
	assert.Equal(t, "abc", body.Details)
	assert.Equal(t, "trace-1", body.TraceID)
}

func TestErrorResponse_Unknown(t *testing.T) {
	c, w := newContext()
	ErrorResponse(c, stderrors.New("disk on fire"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"code":500`)
}

func TestErrorResponse_AppError(t *testing.T) {
	c, w := newContext()
	cause := stderrors.New("cause")
	appErr := NewAppErrorWithMessage(499, "custom", cause)

	assert.True(t, IsAppError(appErr))
	assert.Same(t, appErr, GetAppError(appErr))
	assert.ErrorIs(t, appErr, cause)
	assert.Nil(t, GetAppError(cause))

	ErrorResponse(c, appErr)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"traceId":"trace-1"`)
}

func TestErrorResponseWithCode(t *testing.T) {
	c, w := newContext()
	ErrorResponseWithCode(c, code.ErrorLinkURLInvalid, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "URL must start with http:// or https://")
}
