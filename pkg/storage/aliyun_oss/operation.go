package aliyun_oss

import (
	"context"
	"io"
	"path"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

func (p *OSS) GetBucket(bucketName string) error {
	// Get bucket
	if len(bucketName) <= 0 {
		bucketName = p.Config.BucketName
	}
	bucket, err := p.Client.Bucket(bucketName)
	if err != nil {
		return errors.Wrap(err, "aliyun_oss")
	}
	p.Bucket = bucket
	return nil
}

// ObjectKey joins custom-path and fileKey
func (p *OSS) ObjectKey(fileKey string) string {
	return path.Join(p.Config.CustomPath, fileKey)
}

// GetContent 下载对象内容
func (p *OSS) GetContent(ctx context.Context, fileKey string) ([]byte, error) {
	p.mu.Lock()
	if p.Bucket == nil {
		if err := p.GetBucket(""); err != nil {
			p.mu.Unlock()
			return nil, err
		}
	}
	bucket := p.Bucket
	p.mu.Unlock()

	body, err := bucket.GetObject(p.ObjectKey(fileKey), oss.WithContext(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}
	defer body.Close()

	content, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "aliyun_oss")
	}
	return content, nil
}
