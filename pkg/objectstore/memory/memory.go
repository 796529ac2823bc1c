// Package memory is an in-process objectstore.Store for development and tests.
package memory

import (
	"context"
	"sync"

	"backoffice/pkg/objectstore"
)

// Object is a stored blob.
type Object struct {
	Data        []byte
	ContentType string
}

// Store keeps objects in a map.
type Store struct {
	prefix string

	mu      sync.RWMutex
	objects map[string]Object
}

var _ objectstore.Store = (*Store)(nil)

// New returns an empty store generating keys under prefix.
func New(prefix string) *Store {
	return &Store{prefix: prefix, objects: map[string]Object{}}
}

func (s *Store) Put(ctx context.Context, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectstore.NewKey(s.prefix, contentType)
	stored := make([]byte, len(data))
	copy(stored, data)

	s.mu.Lock()
	s.objects[key] = Object{Data: stored, ContentType: contentType}
	s.mu.Unlock()

	return key, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()

	return nil
}

// Get returns the object stored under key.
func (s *Store) Get(key string) (Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]

	return obj, ok
}

// Len returns the number of stored objects.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.objects)
}
