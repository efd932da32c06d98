package reference

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"market-board/core/storage"

	"github.com/go-resty/resty/v2"
	"github.com/minio/minio-go/v7"
)

// Fetcher retrieves a named reference file.
type Fetcher interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// NewFetcher builds the Fetcher selected by cfg.Source. The storage client and
// bucket are only used by the s3 source and may be nil otherwise.
func NewFetcher(cfg Config, client storage.Client, bucket string) (Fetcher, error) {
	switch cfg.Source {
	case SourceHTTP:
		return NewHTTPFetcher(cfg.BaseURL, timeoutOf(cfg)), nil
	case SourceS3:
		if client == nil {
			return nil, fmt.Errorf("reference source %q requires a storage client", cfg.Source)
		}
		return NewBucketFetcher(client, bucket, cfg.Prefix), nil
	case SourceFile:
		return NewFileFetcher(cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unsupported reference source: %s", cfg.Source)
	}
}

func timeoutOf(cfg Config) time.Duration {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return time.Duration(timeout) * time.Second
}

// HTTPFetcher downloads reference files over HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates a fetcher rooted at baseURL.
func NewHTTPFetcher(baseURL string, timeout time.Duration) *HTTPFetcher {
	client := resty.New()
	client.SetBaseURL(strings.TrimSuffix(baseURL, "/"))
	client.SetTimeout(timeout)
	client.SetRetryCount(2)
	return &HTTPFetcher{client: client}
}

// Fetch downloads baseURL/name.
func (f *HTTPFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get("/" + strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", name, resp.StatusCode())
	}
	return resp.Body(), nil
}

// BucketFetcher reads reference files from object storage.
type BucketFetcher struct {
	client storage.Client
	bucket string
	prefix string
}

// NewBucketFetcher creates a fetcher reading bucket/prefix/<name>.
func NewBucketFetcher(client storage.Client, bucket, prefix string) *BucketFetcher {
	return &BucketFetcher{client: client, bucket: bucket, prefix: prefix}
}

// Fetch reads the object for name.
func (f *BucketFetcher) Fetch(ctx context.Context, name string) ([]byte, error) {
	objectName := path.Join(f.prefix, name)
	obj, err := f.client.GetObject(ctx, f.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", objectName, err)
	}
	return data, nil
}

// FileFetcher reads reference files from a local directory.
type FileFetcher struct {
	dir string
}

// NewFileFetcher creates a fetcher reading dir/<name>.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{dir: dir}
}

// Fetch reads dir/name.
func (f *FileFetcher) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, filepath.Clean("/"+name)))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
