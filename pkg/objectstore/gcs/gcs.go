// Package gcs implements objectstore.Store on Google Cloud Storage.
package gcs

import (
	"context"
	"errors"
	"fmt"

	"backoffice/pkg/objectstore"
	"backoffice/pkg/serrors"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// Options configures the client.
type Options struct {
	Bucket string
	// CredentialsFile is a service account key file; empty uses application
	// default credentials.
	CredentialsFile string
	// Endpoint overrides the API endpoint, e.g. for the fake-gcs emulator.
	Endpoint  string
	KeyPrefix string
}

// Store writes objects to a single bucket.
type Store struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

var _ objectstore.Store = (*Store)(nil)

// New creates the storage client.
func New(ctx context.Context, opts Options) (*Store, error) {
	clientOpts := []option.ClientOption{option.WithScopes(storage.ScopeReadWrite)}
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}
	if opts.Endpoint != "" {
		clientOpts = append(clientOpts, option.WithEndpoint(opts.Endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("could not create gcs client: %w", err)
	}

	return &Store{
		client: client,
		bucket: client.Bucket(opts.Bucket),
		prefix: opts.KeyPrefix,
	}, nil
}

func (s *Store) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	key := objectstore.NewKey(s.prefix, contentType)

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return "", serrors.Wrap(objectstore.ErrStoreUnavailable, err, "could not write object %s", key)
	}
	if err := w.Close(); err != nil {
		return "", serrors.Wrap(objectstore.ErrStoreUnavailable, err, "could not finalize object %s", key)
	}

	return key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.bucket.Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return serrors.Wrap(objectstore.ErrStoreUnavailable, err, "could not delete object %s", key)
	}

	return nil
}

// Close releases the client.
func (s *Store) Close() error {
	return s.client.Close()
}
