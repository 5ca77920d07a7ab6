package helpers

import (
	"context"
	"testing"
	"time"

	"github.com/forgo/lmskit/internal/model"
	"github.com/forgo/lmskit/internal/repository"
)

// AssertPostExists checks that a post exists in the store
func AssertPostExists(t testing.TB, store repository.PostStore, id string) *model.Post {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	post, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to query for post: %v", err)
	}
	if post == nil {
		t.Errorf("expected post %s to exist, but it doesn't", id)
	}
	return post
}

// AssertPostNotExists checks that a post does not exist
func AssertPostNotExists(t testing.TB, store repository.PostStore, id string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), 5*time.Second)
	defer cancel()

	post, err := store.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("failed to query for post: %v", err)
	}
	if post != nil {
		t.Errorf("expected post %s to not exist, but it does", id)
	}
}

// AssertPostType checks that the post exists and has the given type
func AssertPostType(t testing.TB, store repository.PostStore, id string, want model.PostType) {
	t.Helper()

	post := AssertPostExists(t, store, id)
	if post != nil && post.Type != want {
		t.Errorf("expected post %s to have type %s, got %s", id, want, post.Type)
	}
}
