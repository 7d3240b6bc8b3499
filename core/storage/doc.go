// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so dumps can be archived to AWS S3 or a
// self-hosted MinIO instance and restored on another machine.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it
// easy to mock storage interactions in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
