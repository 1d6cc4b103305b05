package aliyun_oss

import (
	"sync"
	"time"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

type Config struct {
	Endpoint        string        `yaml:"endpoint"`
	BucketName      string        `yaml:"bucket-name"`
	AccessKeyID     string        `yaml:"access-key-id"`
	AccessKeySecret string        `yaml:"access-key-secret"`
	CustomPath      string        `yaml:"custom-path"`
	Timeout         time.Duration `yaml:"timeout"`
}

type OSS struct {
	mu     sync.Mutex
	Client *oss.Client
	Bucket *oss.Bucket
	Config *Config
}

func NewClient(conf *Config) (*OSS, error) {
	if conf == nil || conf.Endpoint == "" {
		return nil, errors.New("aliyun_oss: endpoint is required")
	}

	var opts []oss.ClientOption
	if conf.Timeout > 0 {
		sec := int64(conf.Timeout / time.Second)
		if sec < 1 {
			sec = 1
		}
		opts = append(opts, oss.Timeout(sec, sec))
	}

	client, err := oss.New(conf.Endpoint, conf.AccessKeyID, conf.AccessKeySecret, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}

	return &OSS{
		Client: client,
		Config: conf,
	}, nil
}
