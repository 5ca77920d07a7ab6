package helpers

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgo/lmskit/internal/model"
	"github.com/forgo/lmskit/internal/testing/testdb"
)

// recordingTB wraps a real test but records failures instead of reporting them
type recordingTB struct {
	testing.TB
	errors []string
	fatal  bool
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Errorf(format string, args ...interface{}) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingTB) Fatalf(format string, args ...interface{}) {
	r.fatal = true
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func createPost(t *testing.T, tdb *testdb.TestDB, postType model.PostType) string {
	t.Helper()
	post := &model.Post{
		Type:   postType,
		Status: model.PostStatusPublish,
		Title:  "Gold",
	}
	require.NoError(t, tdb.Posts.Create(context.Background(), post))
	return post.ID
}

func TestAssertPostExists(t *testing.T) {
	tdb := testdb.New(t)
	id := createPost(t, tdb, model.PostTypeMembership)

	post := AssertPostExists(t, tdb.Posts, id)
	require.NotNil(t, post)
	assert.Equal(t, "Gold", post.Title)
}

func TestAssertPostExists_Missing(t *testing.T) {
	tdb := testdb.New(t)
	rec := &recordingTB{TB: t}

	post := AssertPostExists(rec, tdb.Posts, "post:missing")
	assert.Nil(t, post)
	assert.False(t, rec.fatal)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], "post:missing")
}

func TestAssertPostNotExists(t *testing.T) {
	tdb := testdb.New(t)
	AssertPostNotExists(t, tdb.Posts, "post:missing")

	id := createPost(t, tdb, model.PostTypePost)
	rec := &recordingTB{TB: t}
	AssertPostNotExists(rec, tdb.Posts, id)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], id)
}

func TestAssertPostType(t *testing.T) {
	tdb := testdb.New(t)
	id := createPost(t, tdb, model.PostTypeCourse)

	AssertPostType(t, tdb.Posts, id, model.PostTypeCourse)

	rec := &recordingTB{TB: t}
	AssertPostType(rec, tdb.Posts, id, model.PostTypeMembership)
	require.Len(t, rec.errors, 1)
	assert.Contains(t, rec.errors[0], string(model.PostTypeMembership))
}
