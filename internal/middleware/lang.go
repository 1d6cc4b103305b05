package middleware

import (
	"strings"

	"github.com/haierkeys/link-store-service/pkg/app"
	"github.com/haierkeys/link-store-service/pkg/code"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"golang.org/x/text/language"
)

// 支持的语言，顺序与 langCodes / translatorLocales 对应
var (
	supportedTags     = []language.Tag{language.English, language.SimplifiedChinese}
	langCodes         = []string{"en", "zh_cn"}
	translatorLocales = []string{"en", "zh"}
	langMatcher       = language.NewMatcher(supportedTags)
)

// NegotiateLang 按 query lang -> header lang -> Accept-Language 的顺序协商语言
// 返回 pkg/code 使用的语言代码与 translator 名称
func NegotiateLang(c *gin.Context, defaultLang string) (string, string) {
	var tags []language.Tag

	explicit := c.Query("lang")
	if explicit == "" {
		explicit = c.GetHeader("lang")
	}
	if explicit != "" {
		if tag, err := language.Parse(strings.ReplaceAll(explicit, "_", "-")); err == nil {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		if accept := c.GetHeader("Accept-Language"); accept != "" {
			if parsed, _, err := language.ParseAcceptLanguage(accept); err == nil {
				tags = parsed
			}
		}
	}

	if len(tags) == 0 {
		for i, l := range langCodes {
			if l == defaultLang {
				return langCodes[i], translatorLocales[i]
			}
		}
		return langCodes[0], translatorLocales[0]
	}

	_, idx, conf := langMatcher.Match(tags...)
	if conf == language.No {
		idx = 0
	}
	return langCodes[idx], translatorLocales[idx]
}

// LangWithTranslator 创建带翻译器的语言中间件（支持依赖注入）
// 协商结果只写入当前请求的上下文，不修改全局默认语言
func LangWithTranslator(uni *ut.UniversalTranslator, defaultLang string) gin.HandlerFunc {

	return func(c *gin.Context) {

		lang, locale := NegotiateLang(c, defaultLang)
		if !code.IsSupportedLang(lang) {
			lang = code.FALLBACK_LNG
		}
		c.Set(app.LangKey, lang)

		if uni != nil {
			trans, found := uni.GetTranslator(locale)
			if !found {
				trans, _ = uni.GetTranslator("en")
			}
			c.Set("trans", trans)
		}

		c.Next()
	}
}
