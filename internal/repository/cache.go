package repository

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/forgo/lmskit/internal/database"
	"github.com/forgo/lmskit/internal/model"
)

// CachedPostStore keeps recently read or written posts in an LRU cache in
// front of another store. Callers always receive their own copy.
type CachedPostStore struct {
	PostStore
	cache *lru.Cache[string, model.Post]
}

// NewCachedPostStore wraps store with a cache holding up to size posts
func NewCachedPostStore(store PostStore, size int) (*CachedPostStore, error) {
	cache, err := lru.New[string, model.Post](size)
	if err != nil {
		return nil, fmt.Errorf("post cache: %w", err)
	}
	return &CachedPostStore{PostStore: store, cache: cache}, nil
}

// Create creates a post and caches it
func (s *CachedPostStore) Create(ctx context.Context, post *model.Post) error {
	if err := s.PostStore.Create(ctx, post); err != nil {
		return err
	}
	s.cache.Add(post.ID, *post)
	return nil
}

// GetByID serves from the cache, falling back to the wrapped store.
// Absent posts are not cached.
func (s *CachedPostStore) GetByID(ctx context.Context, id string) (*model.Post, error) {
	if p, ok := s.cache.Get(id); ok {
		return &p, nil
	}
	post, err := s.PostStore.GetByID(ctx, id)
	if err != nil || post == nil {
		return post, err
	}
	s.cache.Add(id, *post)
	return post, nil
}

// Update updates the wrapped store, then refreshes the cached copy
func (s *CachedPostStore) Update(ctx context.Context, post *model.Post) error {
	if err := s.PostStore.Update(ctx, post); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			s.cache.Remove(post.ID)
		}
		return err
	}
	s.cache.Add(post.ID, *post)
	return nil
}

// Delete evicts the post and removes it from the wrapped store
func (s *CachedPostStore) Delete(ctx context.Context, id string) error {
	s.cache.Remove(id)
	return s.PostStore.Delete(ctx, id)
}

// Len returns the number of cached posts
func (s *CachedPostStore) Len() int {
	return s.cache.Len()
}

// Purge empties the cache
func (s *CachedPostStore) Purge() {
	s.cache.Purge()
}
