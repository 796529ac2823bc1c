// Package s3compat implements objectstore.Store on any S3 compatible service
// (AWS S3, Cloudflare R2, MinIO) through minio-go.
package s3compat

import (
	"bytes"
	"context"
	"fmt"

	"backoffice/pkg/objectstore"
	"backoffice/pkg/serrors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Options configures the client.
type Options struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	UseSSL          bool
	// KeyPrefix is prepended to every generated key.
	KeyPrefix string
	// CreateBucket creates the bucket on startup when missing.
	CreateBucket bool
}

// Store writes objects to a single bucket.
type Store struct {
	client *minio.Client
	bucket string
	prefix string
}

var _ objectstore.Store = (*Store)(nil)

// New connects to the endpoint and verifies the bucket exists.
func New(ctx context.Context, opts Options) (*Store, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKeyID, opts.SecretAccessKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create s3 client: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("could not check bucket %q: %w", opts.Bucket, err)
	}
	if !exists {
		if !opts.CreateBucket {
			return nil, fmt.Errorf("bucket %q does not exist", opts.Bucket)
		}
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{Region: opts.Region}); err != nil {
			return nil, fmt.Errorf("could not create bucket %q: %w", opts.Bucket, err)
		}
	}

	return &Store{client: client, bucket: opts.Bucket, prefix: opts.KeyPrefix}, nil
}

func (s *Store) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	key := objectstore.NewKey(s.prefix, contentType)

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", serrors.Wrap(objectstore.ErrStoreUnavailable, err, "could not put object %s", key)
	}

	return key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}

		return serrors.Wrap(objectstore.ErrStoreUnavailable, err, "could not remove object %s", key)
	}

	return nil
}
