package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgapp "github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNegotiateLang(t *testing.T) {
	cases := []struct {
		name    string
		query   string
		header  string
		accept  string
		def     string
		want    string
		wantLoc string
	}{
		{"default", "", "", "", "en", "en", "en"},
		{"default zh", "", "", "", "zh_cn", "zh_cn", "zh"},
		{"query", "?lang=zh_cn", "", "en-US", "en", "zh_cn", "zh"},
		{"header", "", "zh-CN", "", "en", "zh_cn", "zh"},
		{"accept", "", "", "zh-CN,zh;q=0.9,en;q=0.8", "en", "zh_cn", "zh"},
		{"accept en", "", "", "en-GB", "zh_cn", "en", "en"},
		{"unknown", "?lang=fr", "", "", "en", "en", "en"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
			if tc.header != "" {
				c.Request.Header.Set("lang", tc.header)
			}
			if tc.accept != "" {
				c.Request.Header.Set("Accept-Language", tc.accept)
			}
			lang, loc := NegotiateLang(c, tc.def)
			assert.Equal(t, tc.want, lang)
			assert.Equal(t, tc.wantLoc, loc)
		})
	}
}

func TestLangWithTranslator(t *testing.T) {
	uni := ut.New(en.New(), en.New(), zh.New())

	r := gin.New()
	r.Use(LangWithTranslator(uni, "en"))
	r.GET("/", func(c *gin.Context) {
		trans, ok := c.Value("trans").(ut.Translator)
		assert.True(t, ok)
		c.String(http.StatusOK, c.GetString(pkgapp.LangKey)+" "+trans.Locale())
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=zh_cn", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, "zh_cn zh", w.Body.String())
}

func TestTraceMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(TraceMiddlewareWithConfig(true, ""))
	r.GET("/", func(c *gin.Context) {
		assert.Equal(t, GetTraceIDFromGin(c), GetTraceID(c.Request.Context()))
		c.String(http.StatusOK, GetTraceIDFromGin(c))
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(DefaultTraceIDHeader, "abc")
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc", w.Body.String())
	assert.Equal(t, "abc", w.Header().Get(DefaultTraceIDHeader))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Body.String())

	off := gin.New()
	off.Use(TraceMiddlewareWithConfig(false, ""))
	off.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetTraceIDFromGin(c)) })
	w = httptest.NewRecorder()
	off.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Empty(t, w.Body.String())
	assert.Empty(t, w.Header().Get(DefaultTraceIDHeader))
}

func TestRecoveryWithLogger(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryWithLogger(zap.NewNop()))
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"details":"boom"`)
}

func TestRateLimiter(t *testing.T) {
	l := limiter.NewMethodLimiter().AddBuckets(limiter.BucketRule{
		Key: "POST /links", FillInterval: time.Hour, Capacity: 1, Quantum: 1,
	})
	r := gin.New()
	r.Use(RateLimiter(l))
	r.POST("/links", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/links", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/links", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNoFoundAndAccessLog(t *testing.T) {
	r := gin.New()
	r.Use(AccessLogWithLogger(zap.NewNop()), AppInfoWithConfig("links", "0.1.0"))
	r.NoRoute(NoFound())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":404`)
	assert.Equal(t, "0.1.0", w.Header().Get(AppVersionHeader))
}

func TestContextTimeout(t *testing.T) {
	r := gin.New()
	r.Use(ContextTimeout(time.Minute))
	r.GET("/", func(c *gin.Context) {
		_, ok := c.Request.Context().Deadline()
		assert.True(t, ok)
		c.Status(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
