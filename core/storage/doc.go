// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the
// operations the adapter's object sink needs: checking bucket existence,
// creating buckets, and uploading objects. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// The Client interface abstracts the underlying storage provider, making it
// easier to mock storage interactions for unit testing (see
// core/storage/mocks).
//
// Object storage is an optional output target; by default adapted files go
// to a local directory and this package stays out of the picture.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "adapted-files")
package storage
