package fixtures

import (
	"context"
	"testing"
	"time"

	"github.com/forgo/lmskit/internal/model"
	"github.com/forgo/lmskit/internal/repository"
)

// DefaultTimeout bounds each store call made by a test-facing factory method
const DefaultTimeout = 10 * time.Second

// PostFactory creates posts of one type from a set of default definitions.
// Specialised factories compose it with their own definitions.
type PostFactory struct {
	store    repository.PostStore
	postType model.PostType
	defs     Definitions
	timeout  time.Duration
}

// NewPostFactory creates a factory for posts of postType.
// The post type is fixed: overrides of post_type are ignored.
func NewPostFactory(store repository.PostStore, postType model.PostType, defs Definitions, opts ...FactoryOption) *PostFactory {
	cfg := newFactoryConfig(opts)
	return &PostFactory{
		store:    store,
		postType: postType,
		defs:     defs,
		timeout:  cfg.timeout,
	}
}

// PostDefaults returns the default definitions for plain posts
func PostDefaults(start int) Definitions {
	return Definitions{
		FieldStatus:   Static(model.PostStatusPublish),
		FieldTitle:    MustSequence("Post title %s", start),
		FieldContent:  MustSequence("Post content %s", start),
		FieldExcerpt:  MustSequence("Post excerpt %s", start),
		FieldPostType: Static(model.PostTypePost),
	}
}

// Defaults returns the definitions the factory was built with
func (f *PostFactory) Defaults() Definitions {
	return f.defs
}

// PostType returns the type every post from this factory has
func (f *PostFactory) PostType() model.PostType {
	return f.postType
}

// Generate fills in every field the overrides leave out by calling its
// generator. Overridden fields do not advance their generator.
func (f *PostFactory) Generate(overrides Fields) Fields {
	out := make(Fields, len(f.defs)+len(overrides))
	for name, value := range overrides {
		out[name] = value
	}
	for name, gen := range f.defs {
		if _, ok := out[name]; !ok {
			out[name] = gen.Next()
		}
	}
	out[FieldPostType] = string(f.postType)
	return out
}

// CreateObject stores a post built from exactly the given fields and
// returns its ID
func (f *PostFactory) CreateObject(ctx context.Context, fields Fields) (string, error) {
	post := &model.Post{}
	if err := applyFields(post, fields); err != nil {
		return "", err
	}
	post.Type = f.postType
	if err := f.store.Create(ctx, post); err != nil {
		return "", err
	}
	return post.ID, nil
}

// CreateContext generates fields from the defaults and overrides, then
// stores the post
func (f *PostFactory) CreateContext(ctx context.Context, overrides ...Override) (string, error) {
	return f.CreateObject(ctx, f.Generate(collect(overrides)))
}

// UpdateObject applies fields to an existing post
func (f *PostFactory) UpdateObject(ctx context.Context, id string, fields Fields) error {
	post, err := f.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil || post.Type != f.postType {
		return model.NewWPError("invalid_post", "Invalid post ID.")
	}
	if err := applyFields(post, fields); err != nil {
		return err
	}
	post.Type = f.postType
	return f.store.Update(ctx, post)
}

// GetObjectByID returns the post with the given ID, or nil
func (f *PostFactory) GetObjectByID(ctx context.Context, id string) (*model.Post, error) {
	return f.store.GetByID(ctx, id)
}

// Reset rewinds every sequence in the factory's definitions
func (f *PostFactory) Reset() {
	f.defs.Reset()
}

// Create creates a post and returns its ID, failing the test on error
func (f *PostFactory) Create(t testing.TB, overrides ...Override) string {
	t.Helper()

	ctx, cancel := context.WithTimeout(t.Context(), f.timeout)
	defer cancel()

	id, err := f.CreateContext(ctx, overrides...)
	if err != nil {
		t.Fatalf("fixtures: failed to create %s: %v", f.postType, err)
	}
	return id
}

// CreateMany creates n posts sharing the same overrides
func (f *PostFactory) CreateMany(t testing.TB, n int, overrides ...Override) []string {
	t.Helper()

	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, f.Create(t, overrides...))
	}
	return ids
}

// CreateAndGet creates a post and reads it back
func (f *PostFactory) CreateAndGet(t testing.TB, overrides ...Override) *model.Post {
	t.Helper()

	id := f.Create(t, overrides...)

	ctx, cancel := context.WithTimeout(t.Context(), f.timeout)
	defer cancel()

	post, err := f.GetObjectByID(ctx, id)
	if err != nil {
		t.Fatalf("fixtures: failed to load %s %s: %v", f.postType, id, err)
	}
	if post == nil {
		t.Fatalf("fixtures: %s %s vanished after create", f.postType, id)
	}
	return post
}
