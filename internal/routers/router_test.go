package routers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/haierkeys/link-store-service/internal/app"
	"github.com/haierkeys/link-store-service/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Code    int             `json:"code"`
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Details string          `json:"details"`
}

// newTestServer 创建使用临时目录 links.json 的路由，content 为空表示文件不存在
func newTestServer(t *testing.T, content string) (*gin.Engine, *app.App) {
	t.Helper()
	dir := t.TempDir()
	if content != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "links.json"), []byte(content), 0o644))
	}

	cfg, err := app.NewDefaultConfig()
	require.NoError(t, err)
	cfg.Links.Source.SavePath = dir
	cfg.App.RateLimit = 0

	a, err := app.NewApp(cfg, zap.NewNop())
	require.NoError(t, err)
	_, _ = a.LinkService.Load(context.Background())

	uni := ut.New(en.New(), en.New(), zh.New())
	return NewRouter(web.Files, a, uni), a
}

func do(r http.Handler, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func postForm(r http.Handler, target, title, link string) *httptest.ResponseRecorder {
	form := url.Values{"title": {title}, "url": {link}}
	return do(r, http.MethodPost, target, form.Encode(), "application/x-www-form-urlencoded")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestPage_ExampleFlow(t *testing.T) {
	r, _ := newTestServer(t, `[]`)

	w := do(r, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "My Link Store")
	assert.Contains(t, w.Body.String(), "No links yet.")
	assert.NotContains(t, w.Body.String(), "Download updated links.json")

	w = postForm(r, "/links", "Example", "https://example.com")
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Link added! Download the updated links.json below.")
	assert.Contains(t, body, `<a href="https://example.com" target="_blank" rel="noopener noreferrer">Example</a>`)
	assert.Contains(t, body, `name="title" placeholder="Title" value=""`)
	assert.Contains(t, body, "Download updated links.json")
	assert.NotContains(t, body, "No links yet.")
	assert.NotContains(t, body, `class="error"`)

	w = do(r, http.MethodGet, "/api/links/export", "", "")
	env := decode(t, w)
	require.True(t, env.Status)
	var export struct {
		DownloadURL string `json:"downloadUrl"`
		Count       int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &export))
	assert.Equal(t, 1, export.Count)

	w = do(r, http.MethodGet, export.DownloadURL, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="links.json"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "[\n  {\n    \"title\": \"Example\",\n    \"url\": \"https://example.com\"\n  }\n]", w.Body.String())
}

func TestPage_Rejections(t *testing.T) {
	r, a := newTestServer(t, `[]`)

	w := postForm(r, "/links", "   ", "https://example.com")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), `<div class="error">Both fields are required.</div>`)
	assert.NotContains(t, w.Body.String(), `class="success"`)

	w = postForm(r, "/links", "FTP", "ftp://example.com")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "URL must start with http:// or https://")
	assert.Contains(t, w.Body.String(), `value="FTP"`)
	assert.Contains(t, w.Body.String(), `value="ftp://example.com"`)

	w = postForm(r, "/links", "Upper", "HTTPS://example.com")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	list, err := a.LinkService.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestPage_ChineseMessages(t *testing.T) {
	r, _ := newTestServer(t, `[]`)

	w := postForm(r, "/links?lang=zh_cn", "", "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "两个字段都是必填项。")
	assert.Contains(t, w.Body.String(), `<html lang="zh-CN">`)
}

func TestPage_LoadedListAndSupersededExport(t *testing.T) {
	r, _ := newTestServer(t, `[{"title":"Go","url":"https://go.dev"}]`)

	w := do(r, http.MethodGet, "/", "", "")
	assert.Contains(t, w.Body.String(), ">Go</a>")

	w = do(r, http.MethodPost, "/api/links", `{"title":"A","url":"http://a.example"}`, "application/json")
	env := decode(t, w)
	require.True(t, env.Status, w.Body.String())
	var first struct {
		DownloadURL string `json:"downloadUrl"`
		Count       int    `json:"count"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, 2, first.Count)

	w = postForm(r, "/links", "B", "https://b.example")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, first.DownloadURL, "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 452, decode(t, w).Code)
}

func TestRawSource(t *testing.T) {
	raw := "[ {\"title\":\"Go\",\"url\":\"https://go.dev\"} ]\n"
	r, _ := newTestServer(t, raw)

	w := do(r, http.MethodGet, "/links.json", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, raw, w.Body.String())

	missing, _ := newTestServer(t, "")
	w = do(missing, http.MethodGet, "/links.json", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(missing, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No links yet.")
}

func TestAPI_Links(t *testing.T) {
	r, _ := newTestServer(t, `[{"title":"1","url":"https://1.example"},{"title":"2","url":"https://2.example"},{"title":"3","url":"https://3.example"}]`)

	w := do(r, http.MethodGet, "/api/links?page=2&pageSize=2", "", "")
	env := decode(t, w)
	require.True(t, env.Status)
	var list struct {
		List []struct {
			Title string `json:"title"`
		} `json:"list"`
		Pager struct {
			Page      int `json:"page"`
			PageSize  int `json:"pageSize"`
			TotalRows int `json:"totalRows"`
		} `json:"pager"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.List, 1)
	assert.Equal(t, "3", list.List[0].Title)
	assert.Equal(t, 2, list.Pager.Page)
	assert.Equal(t, 3, list.Pager.TotalRows)

	w = do(r, http.MethodGet, "/api/links?page=9", "", "")
	require.NoError(t, json.Unmarshal(decode(t, w).Data, &list))
	assert.Empty(t, list.List)

	w = do(r, http.MethodGet, "/api/links?pageSize=-1", "", "")
	assert.Equal(t, 401, decode(t, w).Code)

	w = do(r, http.MethodPost, "/api/links", `{"title":"x","url":"example.com"}`, "application/json")
	env = decode(t, w)
	assert.False(t, env.Status)
	assert.Equal(t, 442, env.Code)
	assert.Equal(t, "URL must start with http:// or https://", env.Message)

	w = do(r, http.MethodPost, "/api/links", `{"title":"","url":"nope"}`, "application/json")
	assert.Equal(t, 441, decode(t, w).Code)

	w = do(r, http.MethodPost, "/api/links", `not json`, "application/json")
	assert.Equal(t, 401, decode(t, w).Code)
}

func TestAPI_ExportNotReady(t *testing.T) {
	r, _ := newTestServer(t, `[]`)

	w := do(r, http.MethodGet, "/api/links/export", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 451, decode(t, w).Code)
}

func TestAPI_VersionHealthAndNoRoute(t *testing.T) {
	r, _ := newTestServer(t, `{}`)

	w := do(r, http.MethodGet, "/api/version", "", "")
	env := decode(t, w)
	assert.True(t, env.Status)
	assert.Contains(t, string(env.Data), app.Version)

	w = do(r, http.MethodGet, "/api/health", "", "")
	env = decode(t, w)
	var health struct {
		Status string `json:"status"`
		Links  struct {
			Loaded bool   `json:"loaded"`
			Error  string `json:"error"`
		} `json:"links"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &health))
	assert.Equal(t, "degraded", health.Status)
	assert.False(t, health.Links.Loaded)
	assert.NotEmpty(t, health.Links.Error)

	w = do(r, http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/static/app.css", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".container")
}

func TestPrivateRouter(t *testing.T) {
	_, a := newTestServer(t, `[]`)
	r := NewPrivateRouter(a)

	w := do(r, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "linkstore_load_total")

	w = do(r, http.MethodGet, "/debug/vars", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"linkstore"`)

	w = do(r, http.MethodGet, "/pprof/", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
