package reference

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"market-board/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Mirror copies the named reference files from src into bucket/prefix,
// creating the bucket when it does not exist yet. It stops at the first
// failure and returns the object names written so far.
func Mirror(ctx context.Context, src Fetcher, client storage.Client, bucket, prefix string, logger *zap.Logger, names ...string) ([]string, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", bucket, err)
		}
		logger.Info("Created bucket", zap.String("bucket", bucket))
	}

	var written []string
	for _, name := range names {
		data, err := src.Fetch(ctx, name)
		if err != nil {
			return written, err
		}

		objectName := path.Join(prefix, name)
		_, err = client.PutObject(ctx, bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
			ContentType: contentTypeOf(name),
		})
		if err != nil {
			return written, fmt.Errorf("failed to put %s: %w", objectName, err)
		}
		logger.Info("Mirrored reference file", zap.String("object", objectName), zap.Int("bytes", len(data)))
		written = append(written, objectName)
	}
	return written, nil
}

func contentTypeOf(name string) string {
	switch path.Ext(name) {
	case ".csv":
		return "text/csv"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
