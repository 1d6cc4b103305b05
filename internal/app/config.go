// Package app 提供应用容器，封装所有依赖和服务
package app

import (
	"os"
	"path/filepath"
	"time"

	"github.com/haierkeys/link-store-service/pkg/fileurl"
	"github.com/haierkeys/link-store-service/pkg/storage"
	"github.com/haierkeys/link-store-service/pkg/util"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AppConfig 应用配置
type AppConfig struct {
	File   string       `yaml:"-"` // 配置文件路径，不序列化
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	App    AppSettings  `yaml:"app"`
	Links  LinksConfig  `yaml:"links"`
	Tracer TracerConfig `yaml:"tracer"`
}

// LogConfig 日志配置
type LogConfig struct {
	// Level 日志级别，参见 zapcore.ParseLevel
	Level string `yaml:"level" default:"info"`
	// File 日志文件路径
	File string `yaml:"file" default:"storage/logs/log.log"`
	// Production 是否启用 JSON 输出
	Production bool `yaml:"production" default:"true"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	// RunMode 运行模式
	RunMode string `yaml:"run-mode" default:"release"`
	// HttpPort HTTP 端口
	HttpPort string `yaml:"http-port" default:":9000"`
	// ReadTimeout 读取超时（秒）
	ReadTimeout int `yaml:"read-timeout" default:"60"`
	// WriteTimeout 写入超时（秒）
	WriteTimeout int `yaml:"write-timeout" default:"60"`
	// PrivateHttpListen 私有 HTTP 监听地址，为空则不启动
	PrivateHttpListen string `yaml:"private-http-listen" default:":9001"`
}

// AppSettings 应用设置
type AppSettings struct {
	// DefaultPageSize 默认页面大小
	DefaultPageSize int `yaml:"default-page-size" default:"100"`
	// MaxPageSize 最大页面大小
	MaxPageSize int `yaml:"max-page-size" default:"1000"`
	// DefaultContextTimeout 默认上下文超时时间（秒）
	DefaultContextTimeout int `yaml:"default-context-timeout" default:"60"`
	// DefaultLang 默认语言
	DefaultLang string `yaml:"default-lang" default:"en"`
	// RateLimit 每秒允许的提交次数，0 表示不限制
	RateLimit int `yaml:"rate-limit" default:"10"`
}

// LinksConfig 链接资源配置
type LinksConfig struct {
	// Source links.json 的来源
	Source storage.Config `yaml:"source"`
	// FetchTimeout 单次获取超时，支持格式：10s、1m
	FetchTimeout string `yaml:"fetch-timeout" default:"10s"`
	// LoadOnStartup 启动时加载 links.json
	LoadOnStartup bool `yaml:"load-on-startup" default:"true"`
}

// TracerConfig 请求追踪配置
type TracerConfig struct {
	// Enabled 是否启用追踪
	Enabled bool `yaml:"enabled" default:"true"`
	// Header 追踪 ID 请求头名称，默认 X-Trace-ID
	Header string `yaml:"header" default:"X-Trace-ID"`
}

// NewDefaultConfig 返回只包含默认值的配置
func NewDefaultConfig() (*AppConfig, error) {
	c := new(AppConfig)
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "set default config failed")
	}
	return c, nil
}

// LoadConfig 从文件加载配置
// 返回配置实例和配置文件的绝对路径
func LoadConfig(f string) (*AppConfig, string, error) {
	realpath, err := filepath.Abs(f)
	if err != nil {
		return nil, "", err
	}
	realpath = filepath.Clean(realpath)

	file, err := os.ReadFile(realpath)
	if err != nil {
		return nil, realpath, errors.Wrap(err, "read config file failed")
	}

	c, err := ParseConfig(file)
	if err != nil {
		return nil, realpath, err
	}
	c.File = realpath
	return c, realpath, nil
}

// ParseConfig 解析 YAML 配置内容
func ParseConfig(data []byte) (*AppConfig, error) {
	c := new(AppConfig)

	// 设置默认值
	if err := defaults.Set(c); err != nil {
		return nil, errors.Wrap(err, "set default config failed")
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config file failed")
	}

	// YAML 只覆盖出现的键，显式的零值（0、false、""）保留为关闭开关
	if !storage.StorageTypeMap[c.Links.Source.Type] {
		return nil, errors.Errorf("unsupported links.source.type %q", c.Links.Source.Type)
	}

	return c, nil
}

// Save 保存配置到文件
func (c *AppConfig) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config failed")
	}

	if err := fileurl.CreatePath(c.File, os.ModePerm); err != nil {
		return errors.Wrap(err, "create config dir failed")
	}

	err = os.WriteFile(c.File, data, 0644)
	if err != nil {
		return errors.Wrap(err, "write config file failed")
	}

	return nil
}

// GetFetchTimeout 获取 links.json 获取超时
func (c *AppConfig) GetFetchTimeout() time.Duration {
	return util.ParseDurationOr(c.Links.FetchTimeout, 10*time.Second)
}

// GetSourceConfig 获取填充了超时的资源来源配置
func (c *AppConfig) GetSourceConfig() storage.Config {
	src := c.Links.Source
	src.Timeout = c.GetFetchTimeout()
	return src
}

// GetContextTimeout 获取请求上下文超时
func (c *AppConfig) GetContextTimeout() time.Duration {
	if c.App.DefaultContextTimeout <= 0 {
		return 60 * time.Second
	}
	return time.Duration(c.App.DefaultContextTimeout) * time.Second
}
