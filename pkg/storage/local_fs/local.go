package local_fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

type Config struct {
	SavePath   string `yaml:"save-path" default:"storage"`
	CustomPath string `yaml:"custom-path"`
}

type LocalFS struct {
	Config *Config
}

func NewClient(conf *Config) (*LocalFS, error) {
	if conf == nil {
		return nil, errors.New("local_fs: nil config")
	}
	return &LocalFS{
		Config: conf,
	}, nil
}

func (p *LocalFS) getSavePath() string {
	return filepath.Join(p.Config.SavePath, p.Config.CustomPath)
}

// GetContent 读取本地文件内容
func (p *LocalFS) GetContent(ctx context.Context, fileKey string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(filepath.Join(p.getSavePath(), fileKey))
	if err != nil {
		return nil, errors.Wrap(err, "local_fs")
	}
	return content, nil
}
