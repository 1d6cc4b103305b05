package code

import "net/http"

var (
	Success          = NewSuss(1, lang{en: "Success", zh_cn: "成功"})
	SuccessLinkAdded = NewSuss(2, lang{en: "Link added! Download the updated links.json below.", zh_cn: "链接已添加！请在下方下载更新后的 links.json。"})

	Failed               = NewError(400, lang{en: "Failed", zh_cn: "失败"})
	ErrorInvalidParams   = NewError(401, lang{en: "Invalid params", zh_cn: "参数错误"})
	ErrorNotFoundAPI     = NewError(404, lang{en: "Not found", zh_cn: "找不到"}).WithHTTPStatus(http.StatusNotFound)
	ErrorTooManyRequests = NewError(429, lang{en: "Too many requests", zh_cn: "请求过多"}).WithHTTPStatus(http.StatusTooManyRequests)
	ErrorServerInternal  = NewError(500, lang{en: "Internal server error", zh_cn: "服务内部错误"}).WithHTTPStatus(http.StatusInternalServerError)

	// link editor
	ErrorLinkFieldsRequired = NewError(441, lang{en: "Both fields are required.", zh_cn: "两个字段都是必填项。"})
	ErrorLinkURLInvalid     = NewError(442, lang{en: "URL must start with http:// or https://", zh_cn: "URL 必须以 http:// 或 https:// 开头"})

	// link exporter
	ErrorExportNotReady = NewError(451, lang{en: "No export available yet, add a link first", zh_cn: "暂无可下载的导出，请先添加链接"}).WithHTTPStatus(http.StatusNotFound)
	ErrorExportNotFound = NewError(452, lang{en: "Export not found or superseded", zh_cn: "导出文件不存在或已被替换"}).WithHTTPStatus(http.StatusNotFound)

	// link source
	ErrorSourceUnavailable  = NewError(461, lang{en: "links.json source unavailable", zh_cn: "links.json 来源不可用"}).WithHTTPStatus(http.StatusBadGateway)
	ErrorSourceMalformed    = NewError(462, lang{en: "links.json is not a JSON array of links", zh_cn: "links.json 不是链接 JSON 数组"}).WithHTTPStatus(http.StatusBadGateway)
	ErrorInvalidStorageType = NewError(463, lang{en: "Invalid storage type", zh_cn: "无效的存储类型"})
)
