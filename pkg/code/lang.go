package code

import (
	"errors"
	"reflect"
)

// lang stores English and Chinese text
// lang 类型，用来存储英文和中文文本
type lang struct {
	en    string // English // 英文
	zh_cn string // Chinese // 中文
}

// Default language is English // 默认语言为英文
var lng = "en"

const FALLBACK_LNG = "en"

// GetMessage returns the message in the global default language.
// GetMessage 根据全局默认语言返回消息
func (l lang) GetMessage() string {
	return l.GetMessageIn(lng)
}

// GetMessageIn returns the message in language, falling back to English.
// GetMessageIn 返回指定语言的消息，无效时回退到英文
func (l lang) GetMessageIn(language string) string {
	if language == "" {
		language = FALLBACK_LNG
	}
	val := reflect.ValueOf(l)
	if field := val.FieldByName(language); field.IsValid() && field.String() != "" {
		return field.String()
	}
	return l.en
}

// GetSupportedLanguages returns every language field of lang
// GetSupportedLanguages 返回 lang 支持的所有语言
func GetSupportedLanguages() []string {
	var languages []string
	typ := reflect.TypeOf(lang{})
	for i := 0; i < typ.NumField(); i++ {
		languages = append(languages, typ.Field(i).Name)
	}
	return languages
}

// IsSupportedLang reports whether language is a field of lang.
func IsSupportedLang(language string) bool {
	for _, l := range GetSupportedLanguages() {
		if l == language {
			return true
		}
	}
	return false
}

// SetGlobalDefaultLang sets the global default language
// 设置全局默认语言
func SetGlobalDefaultLang(language string) error {
	if IsSupportedLang(language) {
		lng = language
		return nil
	}
	lng = FALLBACK_LNG
	return errors.New("unsupported language type, set defaulting to " + FALLBACK_LNG)
}

// GetGlobalDefaultLang gets the global default language
// 获取全局默认语言
func GetGlobalDefaultLang() string {
	return lng
}
