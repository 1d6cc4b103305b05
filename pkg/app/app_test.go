package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(target string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func TestResponse_Lang(t *testing.T) {
	c, w := newContext("/")
	c.Set(LangKey, "zh_cn")

	r := NewResponse(c)
	assert.Equal(t, "zh_cn", r.Lang())

	r.ToResponse(code.ErrorLinkFieldsRequired)
	assert.Equal(t, http.StatusOK, w.Code)

	var res Res
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, 441, res.Code)
	assert.False(t, res.Status)
	assert.Equal(t, "两个字段都是必填项。", res.Message)
}

func TestResponse_WithStatus(t *testing.T) {
	c, w := newContext("/")
	NewResponse(c).ToResponseWithStatus(http.StatusNotFound, code.ErrorExportNotFound.Clone().WithDetails("a", "b"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, http.StatusNotFound, c.GetInt("status_code"))
	assert.Contains(t, w.Body.String(), `"details":"a,b"`)
}

func TestResponse_ListWithConfig(t *testing.T) {
	c, w := newContext("/?page=2&pageSize=500")
	cfg := PaginationConfig{DefaultPageSize: 10, MaxPageSize: 50}

	NewResponse(c).ToResponseListWithConfig(code.Success, []string{"x"}, 120, cfg)

	var res struct {
		Data ListRes `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, Pager{Page: 2, PageSize: 50, TotalRows: 120}, res.Data.Pager)
}

func TestPagination(t *testing.T) {
	c, _ := newContext("/?page=-3")
	assert.Equal(t, 1, GetPage(c))
	assert.Equal(t, 100, GetPageSizeWithConfig(c, DefaultPaginationConfig))
	assert.Equal(t, 0, GetPageOffset(0, 10))
	assert.Equal(t, 20, GetPageOffset(3, 10))
}

func TestGetRequestIPAndHost(t *testing.T) {
	c, _ := newContext("/")
	c.Request.Host = "links.example"
	c.Request.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://links.example", GetAccessHost(c))
	assert.NotEmpty(t, GetRequestIP(c))
}

type pageQuery struct {
	Page int `form:"page" binding:"omitempty,min=1"`
}

func TestBindAndValid(t *testing.T) {
	c, _ := newContext("/?page=2")
	var q pageQuery
	ok, errs := BindAndValid(c, &q)
	assert.True(t, ok)
	assert.Nil(t, errs)
	assert.Equal(t, 2, q.Page)

	c, _ = newContext("/?page=-1")
	ok, errs = BindAndValid(c, &pageQuery{})
	assert.False(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "Page", errs[0].Key)
	assert.NotEmpty(t, errs.ErrorsToString())
	assert.Contains(t, errs.MapsToString(), "Page")
}
