package webdav

import (
	"context"
	"path"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/studio-b12/gowebdav"
)

// Config 结构体用于存储 WebDAV 连接信息。
type Config struct {
	Endpoint   string        `yaml:"endpoint"`
	User       string        `yaml:"user"`
	Password   string        `yaml:"password"`
	CustomPath string        `yaml:"custom-path"`
	Timeout    time.Duration `yaml:"timeout"`
}

// WebDAV 结构体表示 WebDAV 客户端。
type WebDAV struct {
	Client *gowebdav.Client
	Config *Config
}

var (
	clientsMu sync.Mutex
	clients   = make(map[string]*WebDAV)
)

// NewClient 创建一个新的 WebDAV 客户端实例。
func NewClient(conf *Config) (*WebDAV, error) {
	if conf == nil || conf.Endpoint == "" {
		return nil, errors.New("webdav: endpoint is required")
	}

	clientsMu.Lock()
	defer clientsMu.Unlock()

	key := conf.Endpoint + conf.User + conf.CustomPath
	if c := clients[key]; c != nil {
		return c, nil
	}

	c := gowebdav.NewClient(conf.Endpoint, conf.User, conf.Password)
	if conf.Timeout > 0 {
		c.SetTimeout(conf.Timeout)
	}

	clients[key] = &WebDAV{
		Client: c,
		Config: conf,
	}
	return clients[key], nil
}

// ObjectKey joins custom-path and fileKey
func (w *WebDAV) ObjectKey(fileKey string) string {
	return path.Join("/", w.Config.CustomPath, fileKey)
}

// GetContent 从 WebDAV 服务器读取文件内容。gowebdav 不支持 context，仅在请求前检查取消。
func (w *WebDAV) GetContent(ctx context.Context, fileKey string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := w.Client.Read(w.ObjectKey(fileKey))
	if err != nil {
		return nil, errors.Wrap(err, "webdav")
	}
	return content, nil
}
