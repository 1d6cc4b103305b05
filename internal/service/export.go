package service

import (
	"bytes"
	"encoding/json"

	"github.com/haierkeys/link-store-service/internal/domain"

	"github.com/pkg/errors"
)

// ExportFileName 导出文件名
const ExportFileName = "links.json"

// EncodeLinks 编码为两空格缩进的 JSON 数组
// 不转义 HTML 字符，无结尾换行，空列表输出 []
func EncodeLinks(links []domain.Link) ([]byte, error) {
	if links == nil {
		links = []domain.Link{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(links); err != nil {
		return nil, errors.Wrap(err, "encode links")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
