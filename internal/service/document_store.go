package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"quizera/internal/cache"
	"quizera/internal/domain"
	"quizera/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// cacheDocumentStore keeps extracted document text in the shared cache.
type cacheDocumentStore struct {
	cache   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCacheDocumentStore creates a DocumentStore over cache. Entries expire
// after ttl; a zero ttl keeps them indefinitely.
func NewCacheDocumentStore(cache domain.Cache, ttl time.Duration) (domain.DocumentStore, error) {
	if cache == nil {
		return nil, fmt.Errorf("cache instance cannot be nil for document store")
	}
	return &cacheDocumentStore{cache: cache, ttl: ttl}, nil
}

func (s *cacheDocumentStore) Put(ctx context.Context, id string, text string) error {
	key := cache.DocumentTextKey(id)
	if err := s.cache.Set(ctx, key, text, s.ttl); err != nil {
		logger.Get().Error("Failed to store document text", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

func (s *cacheDocumentStore) Delete(ctx context.Context, id string) error {
	key := cache.DocumentTextKey(id)
	if err := s.cache.Delete(ctx, key); err != nil {
		logger.Get().Error("Failed to delete document text", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get collapses concurrent lookups of the same id into one cache read.
func (s *cacheDocumentStore) Get(ctx context.Context, id string) (string, error) {
	key := cache.DocumentTextKey(id)
	v, err, shared := s.sfGroup.Do(key, func() (interface{}, error) {
		text, err := s.cache.Get(ctx, key)
		if err != nil {
			if errors.Is(err, domain.ErrCacheMiss) {
				return "", domain.ErrDocumentNotFound
			}
			return "", err
		}
		return text, nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrDocumentNotFound) {
			logger.Get().Error("Failed to load document text", zap.String("key", key), zap.Error(err))
		}
		return "", err
	}
	if shared {
		logger.Get().Debug("Document text lookup shared", zap.String("key", key))
	}
	return v.(string), nil
}

// memoryDocumentStore serves when no cache is configured. Entries live for
// the lifetime of the process.
type memoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

func NewMemoryDocumentStore() domain.DocumentStore {
	return &memoryDocumentStore{docs: make(map[string]string)}
}

func (s *memoryDocumentStore) Put(_ context.Context, id string, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[id] = text
	return nil
}

func (s *memoryDocumentStore) Get(_ context.Context, id string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	text, ok := s.docs[id]
	if !ok {
		return "", domain.ErrDocumentNotFound
	}
	return text, nil
}

func (s *memoryDocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, id)
	return nil
}
