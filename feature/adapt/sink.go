package adapt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"csv-adapter/core/storage"

	"github.com/minio/minio-go/v7"
)

// Sink persists one adapted file. Implementations overwrite silently;
// identical names across runs replace each other.
type Sink interface {
	// Name identifies the sink in logs and reports.
	Name() string
	// Put writes the adapted content under the given file name.
	Put(ctx context.Context, name string, data []byte) error
}

// WriteError marks a sink failure. It is fatal for the whole run: if
// one write fails, all subsequent writes to the same target would fail
// too, so the batch aborts instead of burning through the remaining
// files.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Name, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// DirSink writes adapted files into a local directory, creating it on
// first use.
type DirSink struct {
	Dir string
}

func (s *DirSink) Name() string {
	return "directory " + s.Dir
}

func (s *DirSink) Put(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o644)
}

// ObjectSink writes adapted files to an object storage bucket.
type ObjectSink struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectSink builds an object sink and ensures the target bucket
// exists.
func NewObjectSink(ctx context.Context, client storage.Client, cfg storage.Config) (*ObjectSink, error) {
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", cfg.Bucket, err)
		}
	}

	return &ObjectSink{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix}, nil
}

func (s *ObjectSink) Name() string {
	return "bucket " + s.bucket
}

func (s *ObjectSink) Put(ctx context.Context, name string, data []byte) error {
	object := name
	if s.prefix != "" {
		object = path.Join(s.prefix, name)
	}

	_, err := s.client.PutObject(ctx, s.bucket, object,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/csv"})
	return err
}
