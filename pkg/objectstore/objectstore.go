// Package objectstore defines the opaque blob store used for specialist media:
// callers hand over bytes and a content type and get back a key.
//
//go:generate mockgen -package mockobjectstore -source=objectstore.go -destination=mock/mockobjectstore.go *
package objectstore

import (
	"context"
	"mime"
	"path"
	"strings"

	"backoffice/pkg/serrors"

	"github.com/google/uuid"
)

// ErrStoreUnavailable is the kind of every failure to reach or write to the store.
var ErrStoreUnavailable = serrors.NewKind("STORE_UNAVAILABLE")

// Store persists opaque objects.
type Store interface {
	// Put stores data and returns the generated key.
	Put(ctx context.Context, data []byte, contentType string) (string, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

var preferredExt = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"video/mp4":  ".mp4",
}

// NewKey returns a random key under prefix with an extension derived from
// contentType, e.g. "specialists/1b9d...e2.png".
func NewKey(prefix, contentType string) string {
	return path.Join(prefix, uuid.NewString()+extension(contentType))
}

func extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if ext, ok := preferredExt[mediaType]; ok {
		return ext
	}
	if exts, err := mime.ExtensionsByType(mediaType); err == nil && len(exts) > 0 {
		return strings.ToLower(exts[0])
	}

	return ""
}
