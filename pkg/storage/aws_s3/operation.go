package aws_s3

import (
	"context"
	"io"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ObjectKey joins custom-path and fileKey
func (p *S3) ObjectKey(fileKey string) string {
	return path.Join(p.Config.CustomPath, fileKey)
}

// GetContent 下载对象内容
func (p *S3) GetContent(ctx context.Context, fileKey string) ([]byte, error) {
	objectKey := p.ObjectKey(fileKey)

	out, err := p.S3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.Config.BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "aws_s3: get %s/%s", p.Config.BucketName, objectKey)
	}
	defer out.Body.Close()

	content, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, errors.Wrap(err, "aws_s3")
	}

	p.logger.Debug("aws_s3 object fetched",
		zap.String("bucket", p.Config.BucketName),
		zap.String("key", objectKey),
		zap.Int("size", len(content)))
	return content, nil
}
