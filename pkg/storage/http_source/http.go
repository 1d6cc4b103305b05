// Package http_source reads the resource from a plain HTTP(S) endpoint, e.g. a repository raw URL
// Package http_source 通过 HTTP(S) 地址读取资源，例如仓库的 raw 地址
package http_source

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// MaxBodySize 响应体最大读取字节数
const MaxBodySize = 8 << 20

// ErrBodyTooLarge 响应体超过 MaxBodySize
var ErrBodyTooLarge = errors.New("http_source: body too large")

type Config struct {
	Endpoint string        `yaml:"endpoint"`
	User     string        `yaml:"user"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout" default:"10s"`
}

type HTTPSource struct {
	Client *http.Client
	Config *Config
	logger *zap.Logger
}

// Option 配置选项函数类型
type Option func(*HTTPSource)

// WithLogger 设置日志器
func WithLogger(logger *zap.Logger) Option {
	return func(s *HTTPSource) {
		s.logger = logger
	}
}

// WithHTTPClient 替换默认的 http.Client
func WithHTTPClient(c *http.Client) Option {
	return func(s *HTTPSource) {
		s.Client = c
	}
}

func NewClient(conf *Config, opts ...Option) (*HTTPSource, error) {
	if conf == nil || conf.Endpoint == "" {
		return nil, errors.New("http_source: endpoint is required")
	}
	timeout := conf.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	s := &HTTPSource{
		Client: &http.Client{Timeout: timeout},
		Config: conf,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// JoinURL 拼接 endpoint 与 key，key 为空时直接使用 endpoint
func JoinURL(endpoint, fileKey string) string {
	if fileKey == "" {
		return endpoint
	}
	return strings.TrimSuffix(endpoint, "/") + "/" + strings.TrimPrefix(fileKey, "/")
}

func (s *HTTPSource) url(fileKey string) string {
	return JoinURL(s.Config.Endpoint, fileKey)
}

// GetContent 获取远端内容，非 2xx 视为失败
func (s *HTTPSource) GetContent(ctx context.Context, fileKey string) ([]byte, error) {
	target := s.url(fileKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "http_source")
	}
	req.Header.Set("Accept", "application/json")
	if s.Config.User != "" {
		req.SetBasicAuth(s.Config.User, s.Config.Password)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "http_source")
	}
	defer resp.Body.Close()

	s.logger.Debug("http_source fetched",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("http_source: unexpected status %d from %s", resp.StatusCode, target)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, errors.Wrap(err, "http_source")
	}
	if len(content) > MaxBodySize {
		return nil, errors.Wrapf(ErrBodyTooLarge, "%s exceeds %d bytes", target, MaxBodySize)
	}
	return content, nil
}
