package dao

import (
	"context"

	"github.com/haierkeys/link-store-service/internal/domain"
	"github.com/haierkeys/link-store-service/pkg/storage"

	"go.uber.org/zap"
)

// linkSource 通过 pkg/storage 读取初始 links.json
type linkSource struct {
	cfg    storage.Config
	client storage.Storager
}

// NewLinkSource 根据存储配置创建资源来源
func NewLinkSource(cfg storage.Config, logger *zap.Logger) (domain.LinkSource, error) {
	client, err := storage.NewClient(&cfg, logger)
	if err != nil {
		return nil, err
	}
	return &linkSource{cfg: cfg, client: client}, nil
}

func (s *linkSource) Fetch(ctx context.Context) ([]byte, error) {
	return s.client.GetContent(ctx, s.cfg.Key)
}

func (s *linkSource) Describe() string {
	return s.cfg.Describe()
}
