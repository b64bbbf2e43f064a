// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client (AWS S3 or self-hosted MinIO). The crawler uses
// it to archive every fetched listing payload and to replay the latest archive
// instead of calling the remote API.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
package storage
