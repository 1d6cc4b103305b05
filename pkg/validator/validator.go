// Package validator wires go-playground/validator into gin and registers the link rules
// Package validator 将 go-playground/validator 接入 gin 并注册链接校验规则
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	// TagNotBlank fails when the trimmed string is empty
	TagNotBlank = "notblank"
	// TagHTTPPrefix fails unless the string starts with http:// or https://
	TagHTTPPrefix = "httpprefix"
)

var httpPrefixPattern = regexp.MustCompile(`^https?://`)

// NotBlank 去除首尾空白后不能为空
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimFunc(field.String(), IsTrimSpace) != ""
}

// IsTrimSpace 与浏览器 String.prototype.trim 一致的空白集合
// 包含 U+FEFF，不包含 U+0085
func IsTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

// HTTPPrefix 必须以 http:// 或 https:// 开头，区分大小写，不做 trim
func HTTPPrefix(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return httpPrefixPattern.MatchString(field.String())
}

// RegisterCustom registers the custom rules on v
// RegisterCustom 在 v 上注册自定义规则
func RegisterCustom(v *validator.Validate) error {
	if err := v.RegisterValidation(TagNotBlank, NotBlank); err != nil {
		return err
	}
	return v.RegisterValidation(TagHTTPPrefix, HTTPPrefix)
}

// New returns a validator reading the `validate` tag with the custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	// 规则名称固定，注册失败只可能是编程错误
	if err := RegisterCustom(v); err != nil {
		panic(err)
	}
	v.RegisterTagNameFunc(JSONTagName)
	return v
}

// JSONTagName reports fields by their json name in validation errors
func JSONTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// CustomValidator implements binding.StructValidator for gin, using the `binding` tag
// CustomValidator 实现 gin 的 binding.StructValidator，使用 `binding` 标签
type CustomValidator struct {
	once     sync.Once
	Validate *validator.Validate
}

var _ binding.StructValidator = (*CustomValidator)(nil)

func NewCustomValidator() *CustomValidator {
	return &CustomValidator{}
}

func (v *CustomValidator) ValidateStruct(obj any) error {
	if kindOfData(obj) != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.Validate.Struct(obj)
}

func (v *CustomValidator) Engine() any {
	v.lazyinit()
	return v.Validate
}

func (v *CustomValidator) lazyinit() {
	v.once.Do(func() {
		v.Validate = validator.New()
		v.Validate.SetTagName("binding")
		if err := RegisterCustom(v.Validate); err != nil {
			panic(err)
		}
	})
}

func kindOfData(data any) reflect.Kind {
	value := reflect.ValueOf(data)
	valueType := value.Kind()
	if valueType == reflect.Ptr {
		valueType = value.Elem().Kind()
	}
	return valueType
}
