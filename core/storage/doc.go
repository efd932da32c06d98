// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client. The market board uses it as one of the
// reference data sources (World.csv and dc.json kept in a bucket) and as the
// mirror target of the "reference mirror" command. Both AWS S3 and
// self-hosted MinIO are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "market-board")
package storage
