// Package web embeds the page template and stylesheet
// Package web 内嵌页面模板与样式
package web

import "embed"

// Files templates/ and static/
//
//go:embed templates static
var Files embed.FS
