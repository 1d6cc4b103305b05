package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/haierkeys/link-store-service/pkg/code"
	"github.com/haierkeys/link-store-service/pkg/storage/aliyun_oss"
	"github.com/haierkeys/link-store-service/pkg/storage/aws_s3"
	"github.com/haierkeys/link-store-service/pkg/storage/http_source"
	"github.com/haierkeys/link-store-service/pkg/storage/local_fs"
	"github.com/haierkeys/link-store-service/pkg/storage/webdav"

	"go.uber.org/zap"
)

type Type = string
type CloudType = Type

const OSS CloudType = "oss"
const R2 CloudType = "r2"
const S3 CloudType = "s3"
const LOCAL Type = "localfs"
const HTTP Type = "http"
const MinIO CloudType = "minio"
const WebDAV CloudType = "webdav"

var StorageTypeMap = map[Type]bool{
	OSS:    true,
	R2:     true,
	S3:     true,
	LOCAL:  true,
	HTTP:   true,
	MinIO:  true,
	WebDAV: true,
}

// Config Unified source configuration
// Config 统一的资源来源配置
type Config struct {
	Type Type `yaml:"type" default:"localfs"`

	// Object key of the resource, e.g. links.json
	// 资源的对象键
	Key        string `yaml:"key" default:"links.json"`
	CustomPath string `yaml:"custom-path"`

	// Cloud Storage (S3/OSS/MinIO/R2), HTTP base url
	Endpoint        string `yaml:"endpoint"`
	Region          string `yaml:"region"`
	BucketName      string `yaml:"bucket-name"`
	AccessKeyID     string `yaml:"access-key-id"`
	AccessKeySecret string `yaml:"access-key-secret"`
	AccountID       string `yaml:"account-id"` // Cloudflare R2 specific

	// WebDAV
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	// Local FS
	SavePath string `yaml:"save-path" default:"storage"`

	// Timeout is filled from links.fetch-timeout
	Timeout time.Duration `yaml:"-"`
}

// Storager reads the raw bytes stored under key
// Storager 读取 key 对应的原始内容
type Storager interface {
	GetContent(ctx context.Context, key string) ([]byte, error)
}

// Describe returns a short human readable location of key
// Describe 返回资源位置的简短描述
func (c *Config) Describe() string {
	switch c.Type {
	case LOCAL:
		return fmt.Sprintf("localfs:%s/%s", c.SavePath, c.Key)
	case HTTP:
		return "http:" + http_source.JoinURL(c.Endpoint, c.Key)
	case WebDAV:
		return fmt.Sprintf("webdav:%s/%s", c.Endpoint, c.Key)
	default:
		return fmt.Sprintf("%s:%s/%s", c.Type, c.BucketName, c.Key)
	}
}

func NewClient(config *Config, logger *zap.Logger) (Storager, error) {
	if config == nil {
		return nil, code.ErrorInvalidStorageType
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cType := config.Type
	if cType == LOCAL {
		cfg := &local_fs.Config{
			SavePath:   config.SavePath,
			CustomPath: config.CustomPath,
		}
		return local_fs.NewClient(cfg)
	} else if cType == HTTP {
		cfg := &http_source.Config{
			Endpoint: config.Endpoint,
			User:     config.User,
			Password: config.Password,
			Timeout:  config.Timeout,
		}
		return http_source.NewClient(cfg, http_source.WithLogger(logger))
	} else if cType == OSS {
		cfg := &aliyun_oss.Config{
			Endpoint:        config.Endpoint,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
			Timeout:         config.Timeout,
		}
		return aliyun_oss.NewClient(cfg)
	} else if cType == S3 || cType == MinIO || cType == R2 {
		endpoint := config.Endpoint
		if cType == R2 && endpoint == "" && config.AccountID != "" {
			endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", config.AccountID)
		}
		region := config.Region
		if region == "" && cType != S3 {
			region = "auto"
		}
		cfg := &aws_s3.Config{
			Endpoint:        endpoint,
			Region:          region,
			BucketName:      config.BucketName,
			AccessKeyID:     config.AccessKeyID,
			AccessKeySecret: config.AccessKeySecret,
			CustomPath:      config.CustomPath,
			// MinIO / R2 only work with path style addressing
			UsePathStyle: cType != S3,
		}
		return aws_s3.NewClient(cfg, aws_s3.WithLogger(logger))
	} else if cType == WebDAV {
		cfg := &webdav.Config{
			Endpoint:   config.Endpoint,
			User:       config.User,
			Password:   config.Password,
			CustomPath: config.CustomPath,
			Timeout:    config.Timeout,
		}
		return webdav.NewClient(cfg)
	}
	return nil, code.ErrorInvalidStorageType
}
