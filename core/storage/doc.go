// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow Client interface covering what
// publishing the consolidated icon document needs: checking the bucket,
// creating it, and uploading one object. Both AWS S3 and self-hosted MinIO
// instances are supported.
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if errors.Is(err, storage.ErrNotConfigured) {
//	    // publishing disabled
//	}
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
